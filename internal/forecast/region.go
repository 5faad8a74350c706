package forecast

import "strings"

// DefaultRegionCode is used when a location name is not in the table.
const DefaultRegionCode = "11B10101" // Seoul

// RegionResolver maps human location names to KMA mid-term region codes
// (regId) and region codes to the coarser broadcast-station ids (stnId)
// used by the narrative feed. Both lookups are total: unknown inputs fall
// back to a default instead of failing.
type RegionResolver struct {
	codes map[string]string
}

// NewRegionResolver builds a resolver over the given name->regId table.
// The table is not copied; callers must not mutate it afterwards.
func NewRegionResolver(codes map[string]string) *RegionResolver {
	return &RegionResolver{codes: codes}
}

// RegionCode returns the regId for a location name, or the Seoul default
// on a miss.
func (r *RegionResolver) RegionCode(location string) string {
	if code, ok := r.codes[location]; ok {
		return code
	}
	return DefaultRegionCode
}

// StationID classifies a region code into the broadcast station that
// publishes its narrative outlook. Region codes are structured: the first
// characters identify the province-level broadcast area.
func (r *RegionResolver) StationID(regionCode string) string {
	switch {
	case strings.HasPrefix(regionCode, "11D1"):
		return "105" // Gangwon (Yeongseo)
	case strings.HasPrefix(regionCode, "11D2"):
		return "105" // Gangwon (Yeongdong)
	case strings.HasPrefix(regionCode, "11C2"):
		return "133" // Daejeon, Sejong, Chungnam
	case strings.HasPrefix(regionCode, "11C1"):
		return "131" // Chungbuk
	case strings.HasPrefix(regionCode, "11F2"):
		return "156" // Gwangju, Jeonnam
	case strings.HasPrefix(regionCode, "11F1"):
		return "146" // Jeonbuk
	case strings.HasPrefix(regionCode, "11H1"):
		return "143" // Daegu, Gyeongbuk
	case strings.HasPrefix(regionCode, "11H2"):
		return "159" // Busan, Ulsan, Gyeongnam
	case strings.HasPrefix(regionCode, "11G"):
		return "184" // Jeju
	case strings.HasPrefix(regionCode, "11B"):
		return "109" // Seoul, Incheon, Gyeonggi
	default:
		return "108" // nationwide
	}
}

// DefaultRegionCodes returns the built-in name->regId table covering the
// major cities and provinces. Loaded at construction so alternate tables
// are injectable in tests.
func DefaultRegionCodes() map[string]string {
	return map[string]string{
		"서울": "11B10101", "인천": "11B20201", "수원": "11B20601", "파주": "11B20305",
		"이천": "11B20612", "평택": "11B20606", "춘천": "11D10301", "원주": "11D10401",
		"강릉": "11D20501", "속초": "11D20601", "대전": "11C20401", "세종": "11C20404",
		"청주": "11C10301", "충주": "11C10101", "전주": "11F10201", "군산": "11F10501",
		"광주": "11F20501", "목포": "11F20401", "여수": "11F20801", "대구": "11H10701",
		"안동": "11H10501", "포항": "11H10201", "부산": "11H20201", "울산": "11H20101",
		"창원": "11H20301", "통영": "11H20401", "제주": "11G00201", "서귀포": "11G00401",
	}
}
