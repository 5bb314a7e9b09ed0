package value

import (
	"math"

	"github.com/spf13/cast"
)

// Geopoint 的字典形态固定为 {"latitude","longitude","altitude"} -> float64，
// 地理索引依赖这个形态。
type Geopoint struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

func (g Geopoint) ToDictionary() map[string]float64 {
	return map[string]float64{
		"latitude":  g.Latitude,
		"longitude": g.Longitude,
		"altitude":  g.Altitude,
	}
}

func (g Geopoint) Equal(o Geopoint) bool {
	const eps = 1e-9
	return math.Abs(g.Latitude-o.Latitude) < eps &&
		math.Abs(g.Longitude-o.Longitude) < eps &&
		math.Abs(g.Altitude-o.Altitude) < eps
}

// GeopointFromAny 要求至少包含 latitude 与 longitude。
func GeopointFromAny(v any) (Geopoint, bool) {
	switch x := v.(type) {
	case nil:
		return Geopoint{}, false
	case Geopoint:
		return x, true
	case map[string]float64:
		lat, okLat := x["latitude"]
		lng, okLng := x["longitude"]
		if !okLat || !okLng {
			return Geopoint{}, false
		}
		return Geopoint{Latitude: lat, Longitude: lng, Altitude: x["altitude"]}, true
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return Geopoint{}, false
	}
	lat, err1 := cast.ToFloat64E(m["latitude"])
	lng, err2 := cast.ToFloat64E(m["longitude"])
	if m["latitude"] == nil || m["longitude"] == nil || err1 != nil || err2 != nil {
		return Geopoint{}, false
	}
	alt, _ := cast.ToFloat64E(m["altitude"])
	return Geopoint{Latitude: lat, Longitude: lng, Altitude: alt}, true
}
