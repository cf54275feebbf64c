package tools

import (
	"sort"
	"strings"
)

// TideStations maps tide gauge codes to station names.
var TideStations = map[string]string{
	"CCH": "Cheung Chau",
	"CLK": "Chek Lap Kok",
	"CMW": "Chi Ma Wan",
	"KCT": "Kwai Chung",
	"KLW": "Ko Lau Wan",
	"LOP": "Lok On Pai",
	"MWC": "Ma Wan",
	"QUB": "Quarry Bay",
	"SPW": "Shek Pik",
	"TAO": "Tai O",
	"TBT": "Tsim Bei Tsui",
	"TMW": "Tai Miu Wan",
	"TPK": "Tai Po Kau",
	"WAG": "Waglan Island",
}

// ClimateStations maps climate station codes to station names.
var ClimateStations = map[string]string{
	"BHD": "Lamma Island",
	"CCH": "Cheung Chau",
	"HKA": "Hong Kong International Airport",
	"HKO": "Hong Kong Observatory",
	"HKP": "Hong Kong Park",
	"HKS": "Wong Chuk Hang",
	"HPV": "Happy Valley",
	"JKB": "Tseung Kwan O",
	"KLT": "Kowloon City",
	"KP":  "King's Park",
	"KSC": "Kau Sai Chau",
	"KTG": "Kwun Tong",
	"LFS": "Lau Fau Shan",
	"NGP": "Ngong Ping",
	"PEN": "Peng Chau",
	"PLC": "Tai Mei Tuk",
	"SE1": "Kai Tak Runway Park",
	"SEK": "Shek Kong",
	"SHA": "Sha Tin",
	"SKG": "Sai Kung",
	"SKW": "Shau Kei Wan",
	"SSH": "Sheung Shui",
	"SSP": "Sham Shui Po",
	"STY": "Stanley",
	"TC":  "Tate's Cairn",
	"TKL": "Ta Kwu Ling",
	"TMS": "Tai Mo Shan",
	"TPO": "Tai Po",
	"TU1": "Tuen Mun",
	"TW":  "Tsuen Wan Shing Mun Valley",
	"TWN": "Tsuen Wan Ho Koon",
	"TY1": "Tsing Yi",
	"WGL": "Waglan Island",
	"WLP": "Wetland Park",
	"WTS": "Wong Tai Sin",
	"YCT": "Tai Po Kau",
	"YLP": "Yuen Long Park",
}

// stationCodes returns the sorted codes of a station table.
func stationCodes(table map[string]string) []string {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// stationHelp renders "CODE (Name)" pairs for parameter descriptions.
func stationHelp(table map[string]string) string {
	codes := stationCodes(table)
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = code + " (" + table[code] + ")"
	}
	return strings.Join(parts, ", ")
}
