// Package ambilite estimates daylight at a place so the board can be shaded
// like the sky outside the player's window.
package ambilite

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Altitudes of the sun centre, in degrees, that bound twilight.
const (
	horizon = 0.0
	civil   = -6.0
)

type Phase int

const (
	Night Phase = iota
	Dawn
	Day
	Dusk
)

func (p Phase) String() string {
	switch p {
	case Dawn:
		return "dawn"
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	default:
		return "night"
	}
}

// Sky holds the solar events of one local day.
// When Polar is set the sun never crosses civil twilight and Bright tells
// whether the day is light or dark throughout.
type Sky struct {
	Dawn, Sunrise, Sunset, Dusk time.Time

	Polar  bool
	Bright bool
}

// SkyOn computes the solar events for the day containing date, in date's location.
func SkyOn(date time.Time, lat, lon float64) Sky {
	loc := date.Location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	var sky Sky
	var dawnOk, duskOk bool
	sky.Dawn, dawnOk = crossing(day, lat, lon, civil, false)
	sky.Sunrise, _ = crossing(day, lat, lon, horizon, false)
	sky.Sunset, _ = crossing(day, lat, lon, horizon, true)
	sky.Dusk, duskOk = crossing(day, lat, lon, civil, true)

	if !dawnOk || !duskOk || sky.Dawn.After(sky.Dusk) {
		noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc)
		sky.Polar = true
		sky.Bright = solarAltitude(noon.UTC(), lat, lon) > civil
	}
	return sky
}

// Phase reports the part of the day t falls in.
func (s Sky) Phase(t time.Time) Phase {
	if s.Polar {
		if s.Bright {
			return Day
		}
		return Night
	}
	switch {
	case t.Before(s.Dawn):
		return Night
	case t.Before(s.Sunrise):
		return Dawn
	case t.Before(s.Sunset):
		return Day
	case t.Before(s.Dusk):
		return Dusk
	default:
		return Night
	}
}

// Intensity returns the light level in [0, 1] at t.
func (s Sky) Intensity(t time.Time) float64 {
	switch s.Phase(t) {
	case Day:
		return 1.0
	case Dawn:
		return interpolate(s.Dawn, s.Sunrise, t)
	case Dusk:
		return 1.0 - interpolate(s.Sunset, s.Dusk, t)
	default:
		return 0.0
	}
}

// Intensity returns ambient light intensity [0.0, 1.0] for now at lat/lon in time zone tz.
// An unknown time zone is treated as night.
func Intensity(now time.Time, lat, lon float64, tz string) float64 {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0.0
	}
	local := now.In(loc)
	return SkyOn(local, lat, lon).Intensity(local)
}

// crossing finds when the sun passes targetAlt on day, rising or setting.
func crossing(day time.Time, lat, lon, targetAlt float64, setting bool) (time.Time, bool) {
	start := day
	end := start.Add(24 * time.Hour)
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, day.Location())

	midnightAlt := solarAltitude(start.UTC(), lat, lon)
	noonAlt := solarAltitude(noon.UTC(), lat, lon)
	if (midnightAlt-targetAlt)*(noonAlt-targetAlt) > 0 {
		return time.Time{}, false
	}

	for end.Sub(start) > time.Minute {
		mid := start.Add(end.Sub(start) / 2)
		if (solarAltitude(mid.UTC(), lat, lon) > targetAlt) == setting {
			start = mid
		} else {
			end = mid
		}
	}
	return start.Round(time.Minute), true
}

// solarAltitude returns solar altitude in degrees for UTC time t, lat and lon.
func solarAltitude(t time.Time, lat, lon float64) float64 {
	jd := julian.TimeToJD(t)
	θ := sidereal.Apparent(jd).Rad() + lon*math.Pi/180
	ra, dec := solar.ApparentEquatorial(jd)
	H := math.Mod(θ-ra.Rad()+2*math.Pi, 2*math.Pi)
	φ := lat * math.Pi / 180
	δ := dec.Rad()
	sinAlt := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(H)
	return math.Asin(sinAlt) * 180 / math.Pi
}

func interpolate(start, end, current time.Time) float64 {
	if !end.After(start) {
		return 1.0
	}
	total := end.Sub(start).Seconds()
	elapsed := current.Sub(start).Seconds()
	return max(0.0, min(1.0, elapsed/total))
}
