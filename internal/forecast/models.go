package forecast

// Mid-term forecasts cover days 4 through 10 after the publication time;
// the first three days belong to the short-term feed and are out of scope.
const (
	MinDayOffset = 4
	MaxDayOffset = 10
)

// DayTemperature is one day's temperature outlook from the getMidTa feed.
// Fields are pointers because the feed omits values freely; a nil field
// means the feed did not report it for that day.
type DayTemperature struct {
	MinTemp  *int    `json:"minTemp"`
	MaxTemp  *int    `json:"maxTemp"`
	MinRange *string `json:"minTempRange"` // e.g. "18~20℃", only when both bounds present
	MaxRange *string `json:"maxTempRange"`
}

// DayPrecipitation is one day's rain/weather outlook from the getMidLandFcst
// feed. Days 4-7 carry separate AM/PM values; days 8-10 report a single
// daily value which lands in the Am fields with the Pm fields left nil.
// That split is the feed's schema, not ours.
type DayPrecipitation struct {
	AmRainPercent *int    `json:"amRainPercent"`
	PmRainPercent *int    `json:"pmRainPercent"`
	AmWeather     *string `json:"amWeather"`
	PmWeather     *string `json:"pmWeather"`
}

// CombinedDayForecast merges one day's temperature and precipitation
// records for a region. It exists only for day offsets present in both
// source feeds.
type CombinedDayForecast struct {
	RegionCode string `json:"regionCode"`
	BaseTime   string `json:"baseTime"`
	DayOffset  int    `json:"dayOffset"` // days after baseTime, 4..10

	MinTemp  *int    `json:"minTemp"`
	MaxTemp  *int    `json:"maxTemp"`
	MinRange *string `json:"minTempRange"`
	MaxRange *string `json:"maxTempRange"`

	AmRainPercent *int    `json:"amRainPercent"`
	PmRainPercent *int    `json:"pmRainPercent"`
	AmWeather     *string `json:"amWeather"`
	PmWeather     *string `json:"pmWeather"`
}

// NarrativeForecast is the free-text regional outlook from getMidFcst,
// split into its standard sections.
type NarrativeForecast struct {
	RegionID      string `json:"regionId"` // broadcast-region prefix, e.g. "11B"
	BaseTime      string `json:"baseTime"`
	Precipitation string `json:"precipitation"`
	Temperature   string `json:"temperature"`
	Maritime      string `json:"maritime"`
	Variability   string `json:"variability"`
}
