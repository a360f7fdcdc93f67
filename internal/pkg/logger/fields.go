package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured log field. Callers build fields through this package so
// that only the logger imports zap.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Bool   = zap.Bool
	Any    = zap.Any
	Err    = zap.Error
)

type point struct {
	lat, lon float64
}

func (p point) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("lat", p.lat)
	enc.AddFloat64("lon", p.lon)
	return nil
}

// Point logs a coordinate as a {"lat","lon"} object under key
func Point(key string, lat, lon float64) Field {
	return zap.Object(key, point{lat: lat, lon: lon})
}
