package reference

// DefaultPostalCodes seeds an empty postal-code table.
var DefaultPostalCodes = []PostalCodeEntry{
	{PostalCode: "0001", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0010", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0015", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0020", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0030", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0040", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0050", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0080", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0101", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0102", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0103", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0104", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0105", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0106", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0107", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0110", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0111", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0112", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0113", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0114", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "0115", PostPlace: "Oslo", Municipality: "Oslo", County: "Oslo"},
	{PostalCode: "5003", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5006", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5007", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5008", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5009", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5010", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5011", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5012", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5013", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5014", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5015", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5018", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5020", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5021", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5022", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "5023", PostPlace: "Bergen", Municipality: "Bergen", County: "Vestland"},
	{PostalCode: "7003", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7004", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7005", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7006", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7007", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7008", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7009", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7010", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7011", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7012", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7013", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7014", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7018", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7020", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7021", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "7022", PostPlace: "Trondheim", Municipality: "Trondheim", County: "Trøndelag"},
	{PostalCode: "4001", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4003", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4004", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4005", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4006", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4007", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4008", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4009", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4010", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4011", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4012", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4013", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4014", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4015", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4016", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4020", PostPlace: "Stavanger", Municipality: "Stavanger", County: "Rogaland"},
	{PostalCode: "4601", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4602", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4603", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4604", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4605", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4606", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4607", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4608", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4609", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4610", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4611", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4612", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4613", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4614", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4615", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "4616", PostPlace: "Kristiansand", Municipality: "Kristiansand", County: "Agder"},
	{PostalCode: "9003", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9004", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9005", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9006", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9007", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9008", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9009", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9010", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9011", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9012", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9013", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9014", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9015", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9016", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9017", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
	{PostalCode: "9018", PostPlace: "Tromsø", Municipality: "Tromsø", County: "Troms og Finnmark"},
}
