package directory

import "github.com/atlasops/wsrflow/internal/domain"

// Default returns the directory for the current store fleet. The table is
// compiled in; it is not reloaded at runtime.
func Default() *Directory {
	return New(storeTable)
}

var storeTable = map[int]domain.StoreDirectoryEntry{
	2682: {LegalEntity: "Atlas East", ClassCode: "2682 - North Fayatte", StoreName: "North Fayette"},
	2683: {LegalEntity: "Atlas East", ClassCode: "2683 - Bridgeville", StoreName: "Bridgeville"},
	2749: {LegalEntity: "Atlas East", ClassCode: "2749 - Cannonsburg", StoreName: "Southpointe"},
	3686: {LegalEntity: "Atlas East", ClassCode: "3686 - Homestead", StoreName: "Homestead"},
	746: {LegalEntity: "Atlas NGC", ClassCode: "0746 - Burnsville", StoreName: "Burnsville"},
	833: {LegalEntity: "Atlas NGC", ClassCode: "0833 - Shakopee", StoreName: "Shakopee"},
	1061: {LegalEntity: "Atlas NGC", ClassCode: "1061 - Wayzata", StoreName: "Wayzata"},
	1206: {LegalEntity: "Atlas NGC", ClassCode: "1206 - Savage", StoreName: "Savage"},
	1337: {LegalEntity: "Atlas NGC", ClassCode: "1337 - Carriage", StoreName: "Shakopee II"},
	522: {LegalEntity: "Atlas 0519", ClassCode: "0522 - Warren", StoreName: "Mankato"},
	1342: {LegalEntity: "Atlas 0519", ClassCode: "1342 - Western", StoreName: "Fairbault"},
	2021: {LegalEntity: "Atlas 0519", ClassCode: "2021 - Holly", StoreName: "Holly"},
	2807: {LegalEntity: "Atlas NGC", ClassCode: "2807 - MacArthur", StoreName: "MacArthur"},
	2811: {LegalEntity: "Atlas West", ClassCode: "2811 - Edinger", StoreName: "Edinger"},
	2812: {LegalEntity: "Atlas West", ClassCode: "2812 - Newhope", StoreName: "New Hope"},
	3260: {LegalEntity: "Atlas West", ClassCode: "3260 - Irvine", StoreName: "Irvine"},
	2808: {LegalEntity: "Atlas NGC", ClassCode: "2808 - Marguerite", StoreName: "Mission Viejo"},
	2821: {LegalEntity: "Atlas West", ClassCode: "2821 - Lake Forest", StoreName: "Lake Forest"},
	2873: {LegalEntity: "Atlas West", ClassCode: "2873 - La Verne", StoreName: "La Verne"},
	2874: {LegalEntity: "Atlas West", ClassCode: "2874 - Upland", StoreName: "Upland"},
	3391: {LegalEntity: "Atlas West", ClassCode: "3391 - 4th & Haven", StoreName: "4th & Haven"},
	2876: {LegalEntity: "Atlas West", ClassCode: "2876 - Irwindale", StoreName: "Irwindale"},
	4018: {LegalEntity: "Atlas West", ClassCode: "4018 - Beverly Hills", StoreName: "Beverly"},
	4022: {LegalEntity: "Atlas West", ClassCode: "4022 - Raymond", StoreName: "Raymond"},
	4024: {LegalEntity: "Atlas West", ClassCode: "4024 - Figueroa", StoreName: "Fig"},
	1694: {LegalEntity: "Atlas 0519", ClassCode: "1694 - Hayden", StoreName: "Hayden"},
	1695: {LegalEntity: "Atlas 0519", ClassCode: "1695 - Cactus", StoreName: "Cactus"},
	2503: {LegalEntity: "Atlas 0519", ClassCode: "2503 - Scottsdale", StoreName: "Scottsdale"},
	2504: {LegalEntity: "Atlas 0519", ClassCode: "2504 - 90th", StoreName: "90th"},
	2006: {LegalEntity: "Atlas NGC", ClassCode: "2006 - McDowell", StoreName: "Goodyear"},
	2391: {LegalEntity: "Atlas NGC", ClassCode: "2391 - Camelback", StoreName: "W Camelback"},
	2883: {LegalEntity: "Atlas NGC", ClassCode: "2883 - Payson", StoreName: "Payson"},
	1762: {LegalEntity: "Atlas NGC", ClassCode: "1762 - Avondale", StoreName: "Avondale"},
	2884: {LegalEntity: "Atlas NGC", ClassCode: "2884 - Estrella", StoreName: "Estrella"},
	3635: {LegalEntity: "Atlas NGC", ClassCode: "3635 - Buckeye", StoreName: "Buckeye"},
	1556: {LegalEntity: "Atlas 0519", ClassCode: "1556 - Camelback", StoreName: "E Camelback"},
	1635: {LegalEntity: "Atlas 0519", ClassCode: "1635 - Washington", StoreName: "Washington"},
	2180: {LegalEntity: "Atlas 0519", ClassCode: "2180 - N 16th", StoreName: "16th"},
	2500: {LegalEntity: "Atlas 0519", ClassCode: "2500 - Roosevelt", StoreName: "Roosevelt"},
	2502: {LegalEntity: "Atlas 0519", ClassCode: "2502 - Central Ave", StoreName: "Central"},
	1696: {LegalEntity: "Atlas 0519", ClassCode: "1696 - Agua Fria", StoreName: "Agua Fria"},
	1955: {LegalEntity: "Atlas 0519", ClassCode: "1955 - East Bell", StoreName: "Bell 1"},
	1956: {LegalEntity: "Atlas 0519", ClassCode: "1956 - Thunderbird", StoreName: "Thunderbird"},
	2176: {LegalEntity: "Atlas 0519", ClassCode: "2176 - Tatum", StoreName: "Tatum"},
	3972: {LegalEntity: "Atlas 0519", ClassCode: "3972 - Deer Valley", StoreName: "Deer Valley"},
	1554: {LegalEntity: "Atlas 0519", ClassCode: "1554 - Scottsdale", StoreName: "N Scottsdale"},
	1957: {LegalEntity: "Atlas 0519", ClassCode: "1957 - 44th", StoreName: "44th"},
	2178: {LegalEntity: "Atlas 0519", ClassCode: "2178 - EastBell", StoreName: "Bell 2"},
	2501: {LegalEntity: "Atlas 0519", ClassCode: "2501 - North Cave", StoreName: "Cave Creek"},
	1127: {LegalEntity: "Atlas East", ClassCode: "1127 - St Pete", StoreName: "St Pete"},
	1441: {LegalEntity: "Atlas East", ClassCode: "1441 - Carrollwood", StoreName: "Carrollwood"},
	3030: {LegalEntity: "Atlas East", ClassCode: "3030 - Waters", StoreName: "Waters"},
	3187: {LegalEntity: "Atlas East", ClassCode: "3187 - Bay Pines", StoreName: "Bay Pines"},
	3613: {LegalEntity: "Atlas East", ClassCode: "3613 - Odessa", StoreName: "Odessa"},
	1307: {LegalEntity: "Atlas East", ClassCode: "1307 - Howard", StoreName: "Howard"},
	1440: {LegalEntity: "Atlas East", ClassCode: "1440 - Stadium", StoreName: "Stadium"},
	1562: {LegalEntity: "Atlas East", ClassCode: "1562 - West Shore", StoreName: "West Shore"},
	3029: {LegalEntity: "Atlas East", ClassCode: "3029 - South Tampa", StoreName: "South Tampa"},
	1789: {LegalEntity: "Atlas East", ClassCode: "1789 - Brandon", StoreName: "Brandon"},
	3612: {LegalEntity: "Atlas East", ClassCode: "3612 - Causeway", StoreName: "Causeway"},
	4105: {LegalEntity: "Atlas East", ClassCode: "4105 - Wesley Chapel", StoreName: "Wesley Chapel"},
	838: {LegalEntity: "Atlas East", ClassCode: "0838 - W Broadway", StoreName: "W Broadway"},
	1111: {LegalEntity: "Atlas East", ClassCode: "1111 - E Broadway", StoreName: "E Broadway"},
	2712: {LegalEntity: "Atlas East", ClassCode: "2712 - Lake Manawa", StoreName: "Manawa"},
	1261: {LegalEntity: "Atlas East", ClassCode: "1261 - S 13th", StoreName: "S 13th"},
	799: {LegalEntity: "Atlas East", ClassCode: "0799 - Farnam", StoreName: "Farnam"},
	877: {LegalEntity: "Atlas East", ClassCode: "0877 - Harlan", StoreName: "Harlan"},
	1018: {LegalEntity: "Atlas East", ClassCode: "1018 - Twin Creek", StoreName: "Twin Creek"},
	1019: {LegalEntity: "Atlas East", ClassCode: "1019 - Giles", StoreName: "Giles"},
	1779: {LegalEntity: "Atlas East", ClassCode: "1779 - Shadow Lake", StoreName: "Midlands"},
	2601: {LegalEntity: "Atlas East", ClassCode: "2601 - L Street", StoreName: "L Street"},
	2711: {LegalEntity: "Atlas East", ClassCode: "2711 - Gretna", StoreName: "Gretna"},
	965: {LegalEntity: "Atlas East", ClassCode: "0965 - Sorenson", StoreName: "Sorenson"},
	1002: {LegalEntity: "Atlas East", ClassCode: "1002 - Irvington", StoreName: "Irvington"},
	1355: {LegalEntity: "Atlas East", ClassCode: "1355 - N 30th", StoreName: "N 30th"},
	4330: {LegalEntity: "Atlas East", ClassCode: "4330 - Blair", StoreName: "Blair"},
	930: {LegalEntity: "Atlas East", ClassCode: "0930 - Elkhorn", StoreName: "Elkhorn"},
	4358: {LegalEntity: "Atlas East", ClassCode: "4358 - Indian Creek", StoreName: "Elkhorn"},
	4586: {LegalEntity: "Atlas East", ClassCode: "4586 - Pittsburgh Airport", StoreName: "Pittsburgh Airport"},
}
