package config

import (
	"github.com/theoremus-urban-solutions/transit-router/renderer"
	"github.com/theoremus-urban-solutions/transit-router/router"
)

// RoutingConfig contains the routing parameters
type RoutingConfig struct {
	BusWaitTime int     `yaml:"bus_wait_time" json:"bus_wait_time" validate:"gte=1,lte=1000"` // minutes
	BusVelocity float64 `yaml:"bus_velocity" json:"bus_velocity" validate:"gt=0,lte=1000"`    // km/h
}

// Settings converts the config into router settings
func (r RoutingConfig) Settings() router.Settings {
	return router.Settings{BusWaitTime: r.BusWaitTime, BusVelocity: r.BusVelocity}
}

// CacheConfig contains memoisation settings for route queries
type CacheConfig struct {
	RouteCacheSize int `yaml:"routeCacheSize" validate:"gte=0"` // 0 disables the cache
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// GTFSConfig contains the optional GTFS static feed to preload
type GTFSConfig struct {
	Path   string `yaml:"path" validate:"omitempty"`
	NameBy string `yaml:"nameBy" validate:"omitempty,oneof=stop_name stop_id"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Routing *RoutingConfig     `yaml:"routing" validate:"omitempty"`
	Render  *renderer.Settings `yaml:"render" validate:"omitempty"`
	Cache   CacheConfig        `yaml:"cache"`
	Logging LoggingConfig      `yaml:"logging"`
	GTFS    GTFSConfig         `yaml:"gtfs"`
}
