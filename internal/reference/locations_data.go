package reference

// counties is the post-2024 county list with its municipalities.
var counties = []County{
	{
		Name:   "Akershus",
		Number: "32",
		Municipalities: []Municipality{
			{Name: "Asker", Number: "3201"},
			{Name: "Bærum", Number: "3205"},
			{Name: "Eidsvoll", Number: "3236"},
			{Name: "Enebakk", Number: "3227"},
			{Name: "Frogn", Number: "3212"},
			{Name: "Gjerdrum", Number: "3229"},
			{Name: "Hurdal", Number: "3238"},
			{Name: "Lillestrøm", Number: "3221"},
			{Name: "Lunner", Number: "3224"},
			{Name: "Nannestad", Number: "3237"},
			{Name: "Nes", Number: "3235"},
			{Name: "Nesodden", Number: "3218"},
			{Name: "Nittedal", Number: "3230"},
			{Name: "Nordre Follo", Number: "3219"},
			{Name: "Rælingen", Number: "3228"},
			{Name: "Ullensaker", Number: "3233"},
			{Name: "Vestby", Number: "3211"},
			{Name: "Ås", Number: "3214"},
		},
	},
	{
		Name:   "Buskerud",
		Number: "33",
		Municipalities: []Municipality{
			{Name: "Drammen", Number: "3301"},
			{Name: "Flesberg", Number: "3332"},
			{Name: "Flå", Number: "3330"},
			{Name: "Gol", Number: "3334"},
			{Name: "Hemsedal", Number: "3336"},
			{Name: "Hol", Number: "3338"},
			{Name: "Hole", Number: "3327"},
			{Name: "Kongsberg", Number: "3305"},
			{Name: "Krødsherad", Number: "3329"},
			{Name: "Modum", Number: "3326"},
			{Name: "Nesbyen", Number: "3335"},
			{Name: "Nore og Uvdal", Number: "3341"},
			{Name: "Ringerike", Number: "3306"},
			{Name: "Rollag", Number: "3334"},
			{Name: "Sigdal", Number: "3328"},
			{Name: "Ål", Number: "3337"},
		},
	},
	{
		Name:   "Innlandet",
		Number: "34",
		Municipalities: []Municipality{
			{Name: "Alvdal", Number: "3428"},
			{Name: "Dovre", Number: "3431"},
			{Name: "Eidskog", Number: "3416"},
			{Name: "Elverum", Number: "3420"},
			{Name: "Engerdal", Number: "3435"},
			{Name: "Etnedal", Number: "3451"},
			{Name: "Folldal", Number: "3429"},
			{Name: "Gausdal", Number: "3441"},
			{Name: "Gjøvik", Number: "3407"},
			{Name: "Gran", Number: "3446"},
			{Name: "Grue", Number: "3417"},
			{Name: "Hamar", Number: "3403"},
			{Name: "Kongsvinger", Number: "3401"},
			{Name: "Lesja", Number: "3432"},
			{Name: "Lillehammer", Number: "3405"},
			{Name: "Lom", Number: "3434"},
			{Name: "Løten", Number: "3412"},
			{Name: "Nord-Aurdal", Number: "3451"},
			{Name: "Nord-Fron", Number: "3436"},
			{Name: "Nord-Odal", Number: "3414"},
			{Name: "Nordre Land", Number: "3448"},
			{Name: "Os", Number: "3430"},
			{Name: "Rendalen", Number: "3433"},
			{Name: "Ringebu", Number: "3440"},
			{Name: "Ringsaker", Number: "3411"},
			{Name: "Sel", Number: "3437"},
			{Name: "Skjåk", Number: "3433"},
			{Name: "Stange", Number: "3413"},
			{Name: "Stor-Elvdal", Number: "3439"},
			{Name: "Søndre Land", Number: "3449"},
			{Name: "Sør-Aurdal", Number: "3452"},
			{Name: "Sør-Fron", Number: "3438"},
			{Name: "Sør-Odal", Number: "3415"},
			{Name: "Tolga", Number: "3426"},
			{Name: "Trysil", Number: "3421"},
			{Name: "Tynset", Number: "3427"},
			{Name: "Vang", Number: "3453"},
			{Name: "Vestre Slidre", Number: "3452"},
			{Name: "Vestre Toten", Number: "3443"},
			{Name: "Vågå", Number: "3435"},
			{Name: "Våler", Number: "3419"},
			{Name: "Østre Toten", Number: "3442"},
			{Name: "Øyer", Number: "3440"},
			{Name: "Øystre Slidre", Number: "3451"},
		},
	},
	{
		Name:   "Oslo",
		Number: "03",
		Municipalities: []Municipality{
			{Name: "Oslo", Number: "0301"},
		},
	},
	{
		Name:   "Vestfold",
		Number: "38",
		Municipalities: []Municipality{
			{Name: "Færder", Number: "3803"},
			{Name: "Horten", Number: "3801"},
			{Name: "Holmestrand", Number: "3802"},
			{Name: "Larvik", Number: "3805"},
			{Name: "Sandefjord", Number: "3804"},
			{Name: "Tønsberg", Number: "3806"},
		},
	},
	{
		Name:   "Telemark",
		Number: "40",
		Municipalities: []Municipality{
			{Name: "Bamble", Number: "4003"},
			{Name: "Drangedal", Number: "4001"},
			{Name: "Fyresdal", Number: "4013"},
			{Name: "Hjartdal", Number: "4012"},
			{Name: "Kragerø", Number: "4002"},
			{Name: "Kviteseid", Number: "4014"},
			{Name: "Midt-Telemark", Number: "4007"},
			{Name: "Nissedal", Number: "4015"},
			{Name: "Nome", Number: "4011"},
			{Name: "Notodden", Number: "4010"},
			{Name: "Porsgrunn", Number: "4004"},
			{Name: "Seljord", Number: "4016"},
			{Name: "Siljan", Number: "4005"},
			{Name: "Skien", Number: "4006"},
			{Name: "Tinn", Number: "4017"},
			{Name: "Tokke", Number: "4018"},
			{Name: "Vinje", Number: "4019"},
		},
	},
	{
		Name:   "Agder",
		Number: "42",
		Municipalities: []Municipality{
			{Name: "Arendal", Number: "4203"},
			{Name: "Birkenes", Number: "4213"},
			{Name: "Bygland", Number: "4214"},
			{Name: "Bykle", Number: "4215"},
			{Name: "Evje og Hornnes", Number: "4216"},
			{Name: "Farsund", Number: "4217"},
			{Name: "Flekkefjord", Number: "4218"},
			{Name: "Froland", Number: "4219"},
			{Name: "Gjerstad", Number: "4220"},
			{Name: "Grimstad", Number: "4204"},
			{Name: "Iveland", Number: "4221"},
			{Name: "Kristiansand", Number: "4204"},
			{Name: "Kvinesdal", Number: "4222"},
			{Name: "Lillesand", Number: "4223"},
			{Name: "Lindesnes", Number: "4224"},
			{Name: "Lyngdal", Number: "4225"},
			{Name: "Mandal", Number: "4226"},
			{Name: "Risør", Number: "4227"},
			{Name: "Sirdal", Number: "4228"},
			{Name: "Tvedestrand", Number: "4229"},
			{Name: "Valle", Number: "4230"},
			{Name: "Vegårshei", Number: "4231"},
			{Name: "Vennesla", Number: "4232"},
			{Name: "Åseral", Number: "4233"},
		},
	},
	{
		Name:   "Rogaland",
		Number: "11",
		Municipalities: []Municipality{
			{Name: "Bokn", Number: "1160"},
			{Name: "Eigersund", Number: "1101"},
			{Name: "Gjesdal", Number: "1102"},
			{Name: "Haugesund", Number: "1106"},
			{Name: "Hjelmeland", Number: "1133"},
			{Name: "Hå", Number: "1119"},
			{Name: "Karmøy", Number: "1149"},
			{Name: "Klepp", Number: "1120"},
			{Name: "Kvitsøy", Number: "1151"},
			{Name: "Lund", Number: "1121"},
			{Name: "Randaberg", Number: "1127"},
			{Name: "Rennesøy", Number: "1134"},
			{Name: "Riska", Number: "1135"},
			{Name: "Sandnes", Number: "1108"},
			{Name: "Sauda", Number: "1136"},
			{Name: "Sokndal", Number: "1111"},
			{Name: "Sola", Number: "1124"},
			{Name: "Stavanger", Number: "1103"},
			{Name: "Strand", Number: "1130"},
			{Name: "Suldal", Number: "1137"},
			{Name: "Time", Number: "1122"},
			{Name: "Tysvær", Number: "1146"},
			{Name: "Utsira", Number: "1159"},
		},
	},
	{
		Name:   "Vestland",
		Number: "46",
		Municipalities: []Municipality{
			{Name: "Alver", Number: "4601"},
			{Name: "Askøy", Number: "4602"},
			{Name: "Aurland", Number: "4603"},
			{Name: "Austevoll", Number: "4604"},
			{Name: "Bergen", Number: "4601"},
			{Name: "Bjørnafjorden", Number: "4605"},
			{Name: "Bremanger", Number: "4606"},
			{Name: "Etne", Number: "4607"},
			{Name: "Fedje", Number: "4608"},
			{Name: "Fitjar", Number: "4609"},
			{Name: "Fjaler", Number: "4610"},
			{Name: "Flåm", Number: "4611"},
			{Name: "Kvinnherad", Number: "4612"},
			{Name: "Kvam", Number: "4613"},
			{Name: "Kinn", Number: "4614"},
			{Name: "Lærdal", Number: "4615"},
			{Name: "Luster", Number: "4616"},
			{Name: "Masfjorden", Number: "4617"},
			{Name: "Modalen", Number: "4618"},
			{Name: "Osterøy", Number: "4619"},
			{Name: "Sogndal", Number: "4620"},
			{Name: "Solund", Number: "4621"},
			{Name: "Stad", Number: "4622"},
			{Name: "Stord", Number: "4623"},
			{Name: "Stryn", Number: "4624"},
			{Name: "Sunnfjord", Number: "4625"},
			{Name: "Sveio", Number: "4626"},
			{Name: "Tysnes", Number: "4627"},
			{Name: "Ullensvang", Number: "4628"},
			{Name: "Ulvik", Number: "4629"},
			{Name: "Vaksdal", Number: "4630"},
			{Name: "Voss", Number: "4631"},
			{Name: "Øygarden", Number: "4632"},
		},
	},
	{
		Name:   "Møre og Romsdal",
		Number: "15",
		Municipalities: []Municipality{
			{Name: "Aukra", Number: "1547"},
			{Name: "Averøy", Number: "1554"},
			{Name: "Fjord", Number: "1539"},
			{Name: "Hustadvika", Number: "1554"},
			{Name: "Kristiansund", Number: "1505"},
			{Name: "Molde", Number: "1506"},
			{Name: "Rauma", Number: "1539"},
			{Name: "Sande", Number: "1563"},
			{Name: "Smøla", Number: "1573"},
			{Name: "Stranda", Number: "1525"},
			{Name: "Sula", Number: "1563"},
			{Name: "Sunndal", Number: "1563"},
			{Name: "Surnadal", Number: "1563"},
			{Name: "Sykkylven", Number: "1566"},
			{Name: "Tingvoll", Number: "1560"},
			{Name: "Ulstein", Number: "1516"},
			{Name: "Vanylven", Number: "1576"},
			{Name: "Vestnes", Number: "1573"},
			{Name: "Volda", Number: "1577"},
			{Name: "Ørskog", Number: "1520"},
			{Name: "Ørsta", Number: "1520"},
			{Name: "Ålesund", Number: "1507"},
		},
	},
	{
		Name:   "Trøndelag",
		Number: "50",
		Municipalities: []Municipality{
			{Name: "Flatanger", Number: "5014"},
			{Name: "Frøya", Number: "5006"},
			{Name: "Grong", Number: "5021"},
			{Name: "Hitra", Number: "5007"},
			{Name: "Høylandet", Number: "5022"},
			{Name: "Indre Fosen", Number: "5015"},
			{Name: "Inderøy", Number: "5023"},
			{Name: "Klæbu", Number: "5016"},
			{Name: "Leka", Number: "5017"},
			{Name: "Levanger", Number: "5025"},
			{Name: "Lierne", Number: "5026"},
			{Name: "Malvik", Number: "5018"},
			{Name: "Melhus", Number: "5019"},
			{Name: "Meråker", Number: "5027"},
			{Name: "Midtre Gauldal", Number: "5028"},
			{Name: "Namsos", Number: "5001"},
			{Name: "Namsskogan", Number: "5029"},
			{Name: "Nærøysund", Number: "5030"},
			{Name: "Oppdal", Number: "5031"},
			{Name: "Orkland", Number: "5032"},
			{Name: "Osen", Number: "5033"},
			{Name: "Overhalla", Number: "5034"},
			{Name: "Rennebu", Number: "5035"},
			{Name: "Rindal", Number: "5036"},
			{Name: "Røros", Number: "5037"},
			{Name: "Selbu", Number: "5038"},
			{Name: "Skaun", Number: "5039"},
			{Name: "Snåsa", Number: "5040"},
			{Name: "Steinkjer", Number: "5004"},
			{Name: "Stjørdal", Number: "5041"},
			{Name: "Trondheim", Number: "5001"},
			{Name: "Tydal", Number: "5042"},
			{Name: "Verdal", Number: "5043"},
			{Name: "Ørland", Number: "5044"},
		},
	},
	{
		Name:   "Nordland",
		Number: "18",
		Municipalities: []Municipality{
			{Name: "Alstahaug", Number: "1820"},
			{Name: "Andøy", Number: "1871"},
			{Name: "Beiarn", Number: "1839"},
			{Name: "Bindal", Number: "1811"},
			{Name: "Bodø", Number: "1804"},
			{Name: "Brønnøy", Number: "1813"},
			{Name: "Bø", Number: "1867"},
			{Name: "Dønna", Number: "1818"},
			{Name: "Evenes", Number: "1853"},
			{Name: "Fauske", Number: "1841"},
			{Name: "Flakstad", Number: "1859"},
			{Name: "Gildeskål", Number: "1838"},
			{Name: "Grane", Number: "1825"},
			{Name: "Hadsel", Number: "1866"},
			{Name: "Hamarøy", Number: "1875"},
			{Name: "Hattfjelldal", Number: "1826"},
			{Name: "Hemnes", Number: "1832"},
			{Name: "Herøy", Number: "1818"},
			{Name: "Leirfjord", Number: "1818"},
			{Name: "Lurøy", Number: "1834"},
			{Name: "Lødingen", Number: "1865"},
			{Name: "Meløy", Number: "1836"},
			{Name: "Moskenes", Number: "1874"},
			{Name: "Narvik", Number: "1806"},
			{Name: "Nesna", Number: "1828"},
			{Name: "Rana", Number: "1833"},
			{Name: "Rødøy", Number: "1836"},
			{Name: "Røst", Number: "11876"},
			{Name: "Saltdal", Number: "1840"},
			{Name: "Sømna", Number: "1812"},
			{Name: "Sortland", Number: "1870"},
			{Name: "Steigen", Number: "1848"},
			{Name: "Sørfold", Number: "1845"},
			{Name: "Tjeldsund", Number: "1851"},
			{Name: "Træna", Number: "1835"},
			{Name: "Tysfjord", Number: "1849"},
			{Name: "Værøy", Number: "1877"},
			{Name: "Vefsn", Number: "1824"},
			{Name: "Vega", Number: "1815"},
			{Name: "Vestvågøy", Number: "1860"},
			{Name: "Vevelstad", Number: "1816"},
			{Name: "Øksnes", Number: "1868"},
		},
	},
	{
		Name:   "Troms og Finnmark",
		Number: "54",
		Municipalities: []Municipality{
			{Name: "Alta", Number: "5401"},
			{Name: "Berlevåg", Number: "5405"},
			{Name: "Båtsfjord", Number: "5411"},
			{Name: "Deatnu", Number: "5421"},
			{Name: "Gamvik", Number: "5412"},
			{Name: "Guovdageaidnu", Number: "5422"},
			{Name: "Hammerfest", Number: "5402"},
			{Name: "Hasvik", Number: "5413"},
			{Name: "Ibestad", Number: "5414"},
			{Name: "Kárášjohka", Number: "5423"},
			{Name: "Kvænangen", Number: "5415"},
			{Name: "Kvæfjord", Number: "5416"},
			{Name: "Lebesby", Number: "5417"},
			{Name: "Loppa", Number: "5418"},
			{Name: "Lyngen", Number: "5419"},
			{Name: "Måsøy", Number: "5420"},
			{Name: "Nordkapp", Number: "5424"},
			{Name: "Nordreisa", Number: "5425"},
			{Name: "Porsanger", Number: "5426"},
			{Name: "Senja", Number: "5427"},
			{Name: "Sør-Varanger", Number: "5428"},
			{Name: "Storfjord", Number: "5429"},
			{Name: "Tromsø", Number: "5401"},
			{Name: "Unjárga", Number: "5430"},
			{Name: "Vadsø", Number: "5403"},
			{Name: "Vardø", Number: "5404"},
		},
	},
}
