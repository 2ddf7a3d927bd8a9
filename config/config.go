package config

import (
	"bytes"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL = "http://localhost/layout-parsing"
	DefaultHost   = "0.0.0.0"
	DefaultPort   = 7860
)

type Config struct {
	APIURL string
	APIKey string

	Host  string
	Port  int
	Share bool

	Debug bool

	// requests per second towards the api, 0 disables limiting
	Limit int
}

func Default() *Config {
	return &Config{
		APIURL: DefaultAPIURL,

		Host: DefaultHost,
		Port: DefaultPort,
	}
}

func Parse(path string) (*Config, error) {
	c := Default()

	if path == "" {
		return c, nil
	}

	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	if file.API.URL != "" {
		c.APIURL = file.API.URL
	}

	if file.API.Key != "" {
		c.APIKey = file.API.Key
	}

	if file.API.Limit != nil {
		c.Limit = *file.API.Limit
	}

	if file.Server.Host != "" {
		c.Host = file.Server.Host
	}

	if file.Server.Port != nil {
		c.Port = *file.Server.Port
	}

	if file.Server.Share != nil {
		c.Share = *file.Server.Share
	}

	if file.Debug != nil {
		c.Debug = *file.Debug
	}

	return c, nil
}

// ApplyEnv overlays API_URL, API_KEY, HOST, PORT, SHARE, DEBUG and LIMIT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if val, ok := lookup("API_URL"); ok && val != "" {
		c.APIURL = val
	}

	if val, ok := lookup("API_KEY"); ok {
		c.APIKey = val
	}

	if val, ok := lookup("HOST"); ok && val != "" {
		c.Host = val
	}

	if val, ok := lookup("PORT"); ok && val != "" {
		port, err := strconv.Atoi(val)

		if err != nil {
			return errors.New("invalid PORT: " + val)
		}

		c.Port = port
	}

	if val, ok := lookup("SHARE"); ok && val != "" {
		share, err := strconv.ParseBool(val)

		if err != nil {
			return errors.New("invalid SHARE: " + val)
		}

		c.Share = share
	}

	if val, ok := lookup("DEBUG"); ok && val != "" {
		debug, err := strconv.ParseBool(val)

		if err != nil {
			return errors.New("invalid DEBUG: " + val)
		}

		c.Debug = debug
	}

	if val, ok := lookup("LIMIT"); ok && val != "" {
		limit, err := strconv.Atoi(val)

		if err != nil {
			return errors.New("invalid LIMIT: " + val)
		}

		c.Limit = limit
	}

	return nil
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("missing api url")
	}

	u, err := url.Parse(c.APIURL)

	if err != nil {
		return errors.New("invalid api url: " + err.Error())
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("invalid api url scheme: " + u.Scheme)
	}

	if u.Host == "" {
		return errors.New("invalid api url: missing host")
	}

	if c.Port < 1 || c.Port > 65535 {
		return errors.New("invalid port: " + strconv.Itoa(c.Port))
	}

	if c.Limit < 0 {
		return errors.New("invalid limit: " + strconv.Itoa(c.Limit))
	}

	return nil
}

// Headers returns the headers sent with every api request.
func (c *Config) Headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	if c.APIKey != "" {
		h.Set("Authorization", "Bearer "+c.APIKey)
	}

	return h
}

func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) Limiter() *rate.Limiter {
	if c.Limit <= 0 {
		return nil
	}

	return createLimiter(&c.Limit)
}

type configFile struct {
	API    apiConfig    `yaml:"api"`
	Server serverConfig `yaml:"server"`

	Debug *bool `yaml:"debug"`
}

type apiConfig struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`

	Limit *int `yaml:"limit"`
}

type serverConfig struct {
	Host  string `yaml:"host"`
	Port  *int   `yaml:"port"`
	Share *bool  `yaml:"share"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
