// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"net"
	"net/url"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// dsnEnv names the environment variable holding the connection string.
const dsnEnv = "GEOBIND_DSN"

// config holds the connection parameters of the catalog database.
type config struct {
	DBName   string `yaml:"dbname"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
}

func defaultConfig() config {
	return config{
		DBName: "postgres",
		User:   "postgres",
		Host:   "localhost",
		Port:   "5432",
	}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return config{}, errors.Wrapf(err, "decoding %s", path)
	}
	return c, nil
}

// DSN returns the connection string of the configured database.
func (c config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/" + c.DBName,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = url.User(c.User)
	}
	return u.String()
}

// resolveDSN picks the flag, then the environment, then the config.
func resolveDSN(flag, env string, c config) string {
	if flag != "" {
		return flag
	}
	if env != "" {
		return env
	}
	return c.DSN()
}
