package reference

// postalCoordinates holds approximate centres for a selection of postal codes.
var postalCoordinates = map[string]Coordinate{
	"0001": {Lat: 59.9139, Lng: 10.7522},
	"0150": {Lat: 59.9150, Lng: 10.7580},
	"0250": {Lat: 59.9200, Lng: 10.7450},
	"0349": {Lat: 59.9050, Lng: 10.7600},
	"0350": {Lat: 59.9050, Lng: 10.7600},
	"0450": {Lat: 59.9100, Lng: 10.7400},
	"0550": {Lat: 59.9200, Lng: 10.7500},
	"0582": {Lat: 59.928534, Lng: 10.831278},
	"0650": {Lat: 59.9300, Lng: 10.7300},
	"0750": {Lat: 59.9400, Lng: 10.7200},
	"0850": {Lat: 59.9500, Lng: 10.7100},
	"0950": {Lat: 59.9600, Lng: 10.7000},
	"1350": {Lat: 60.1695, Lng: 11.0681},
	"1400": {Lat: 59.7203, Lng: 10.8358},
	"1440": {Lat: 59.6697, Lng: 10.6347},
	"1450": {Lat: 59.8667, Lng: 10.6333},
	"1470": {Lat: 59.9262, Lng: 10.9540},
	"2000": {Lat: 59.9556, Lng: 11.0458},
	"2040": {Lat: 60.0833, Lng: 11.1167},
	"2050": {Lat: 60.1394, Lng: 11.1742},
	"2074": {Lat: 60.3013, Lng: 11.1666},
	"2600": {Lat: 61.1153, Lng: 10.4662},
	"2680": {Lat: 61.8833, Lng: 9.0667},
	"3050": {Lat: 59.7667, Lng: 10.2000},
	"3060": {Lat: 59.6167, Lng: 10.4000},
	"3070": {Lat: 59.6000, Lng: 10.2000},
	"3080": {Lat: 59.4889, Lng: 10.3119},
	"3090": {Lat: 59.4167, Lng: 10.4833},
	"3290": {Lat: 59.0167, Lng: 10.0167},
	"3700": {Lat: 59.2094, Lng: 9.6067},
	"3800": {Lat: 59.4167, Lng: 9.0667},
	"4000": {Lat: 58.9700, Lng: 5.7331},
	"4100": {Lat: 59.0667, Lng: 6.0667},
	"4200": {Lat: 59.6667, Lng: 6.3500},
	"4600": {Lat: 58.1467, Lng: 8.0045},
	"4700": {Lat: 58.2833, Lng: 7.9667},
	"5000": {Lat: 60.3913, Lng: 5.3221},
	"5100": {Lat: 60.1833, Lng: 5.2167},
	"5500": {Lat: 59.4133, Lng: 5.2683},
	"6000": {Lat: 62.4722, Lng: 7.0950},
	"6100": {Lat: 62.1500, Lng: 6.0667},
	"6700": {Lat: 61.9333, Lng: 5.1167},
	"7000": {Lat: 63.4305, Lng: 10.3951},
	"7100": {Lat: 63.6167, Lng: 9.4667},
	"8000": {Lat: 67.2804, Lng: 14.4049},
	"8100": {Lat: 67.2667, Lng: 15.3833},
	"9000": {Lat: 69.6492, Lng: 18.9553},
	"9100": {Lat: 69.7281, Lng: 30.0419},
}
