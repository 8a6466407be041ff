package entity

import "fmt"

// Period is a trailing lookback window expressed the way market-data providers accept it.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
)

// periodDays maps each period to calendar days and approximate trading days.
var periodDays = map[Period]struct{ calendar, trading int }{
	Period1Mo: {31, 23},
	Period3Mo: {92, 64},
	Period6Mo: {183, 127},
	Period1Y:  {366, 253},
	Period2Y:  {731, 505},
	Period5Y:  {1827, 1260},
}

// ParsePeriod validates a period string such as "1y".
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("unsupported lookback period %q", s)
	}
	return p, nil
}

// CalendarDays returns the number of calendar days covered by the period.
func (p Period) CalendarDays() int {
	return periodDays[p].calendar
}

// TradingDays returns an upper estimate of trading sessions in the period.
func (p Period) TradingDays() int {
	return periodDays[p].trading
}
