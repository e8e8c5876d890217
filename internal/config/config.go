package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const EnvPrefix = "ZEROWASTE_"

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Application struct {
	Storage  Storage  `koanf:"storage"`
	Database Database `koanf:"db"`
	Stats    Stats    `koanf:"stats"`
	Demo     Demo     `koanf:"demo"`
}

type Storage struct {
	// Driver selects the settings backend: sqlite, postgres or memory.
	Driver string `koanf:"driver"`
	// Path of the SQLite file used by the sqlite driver.
	Path string `koanf:"path"`
	// Key of the settings slot holding the serialized entries.
	Key string `koanf:"key"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

type Stats struct {
	Period   string `koanf:"period"`
	Timezone string `koanf:"timezone"`
}

type Demo struct {
	Seed bool `koanf:"seed"`
}

func Defaults() Application {
	return Application{
		Storage: Storage{
			Driver: DriverSqlite,
			Path:   "./data/zerowaste.db",
			Key:    "waste_entries_storage",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "zerowaste",
			Pass:   "",
			Name:   "zerowaste",
			Schema: "public",
		},
		Stats: Stats{
			Period:   "week",
			Timezone: "Local",
		},
	}
}

func Load(path string) (Application, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("could not load .env file: %v", err)
	}

	var k = koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")
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

	if err := app.Validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (a Application) Validate() error {
	switch a.Storage.Driver {
	case DriverSqlite:
		if a.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s driver", DriverSqlite)
		}
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", a.Storage.Driver)
	}
	if a.Storage.Key == "" {
		return errors.New("storage.key must not be empty")
	}
	return nil
}
