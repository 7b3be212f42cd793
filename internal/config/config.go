package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server Server `koanf:"server"`
	Layout Layout `koanf:"layout"`
	AllDay AllDay `koanf:"allday"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

// Layout holds the named defaults for timed-event geometry. Requests may
// override any of them per call; nothing here is ambient mutable state.
type Layout struct {
	HourBlockHeight      float64 `koanf:"hourblockheight"`
	OverlapEventsSpacing float64 `koanf:"overlapeventsspacing"`
	RightEdgeSpacing     float64 `koanf:"rightedgespacing"`
	DayStart             float64 `koanf:"daystart"`
	DayEnd               float64 `koanf:"dayend"`
	ScreenWidth          float64 `koanf:"screenwidth"`
}

type AllDay struct {
	MaxVisibleRows int     `koanf:"maxvisiblerows"`
	RowHeight      float64 `koanf:"rowheight"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr: ":8181",
		},
		Layout: Layout{
			HourBlockHeight: 100,
			DayStart:        0,
			DayEnd:          24,
			ScreenWidth:     375,
		},
		AllDay: AllDay{
			MaxVisibleRows: 2,
			RowHeight:      32,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "TIMELINE_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "TIMELINE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
