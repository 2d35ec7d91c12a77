// Package ioconfig reads config.yaml and GNSHOGUN_* environment
// variables.
// This is an impure package that handles file system operations.
package ioconfig

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnshogun/internal/iofs"
	"github.com/gnames/gnshogun/pkg/config"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables.
const EnvPrefix = "GNSHOGUN"

// envKeys are configuration keys that can be set through environment.
// They match the fields included in config.ToOptions().
var envKeys = []string{
	"shogun.path",
	"shogun.bowtie2_build_path",
	"shogun.taxacut",
	"shogun.threads",
	"shogun.percent_id",
	"output.format",
	"log.level",
	"log.format",
	"log.destination",
	"tmp_dir",
	"ledger",
	"jobs_number",
}

// Load reads config.yaml from the config directory of homeDir and
// applies environment variables on top of it. The result is raw: it
// must be converted with ToOptions and applied to config.New() to get
// a valid configuration.
func Load(homeDir string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// EnvName returns the environment variable for a configuration key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func initEnvVars(v *viper.Viper) {
	// Variables are bound one by one, so it is clear which of them
	// are allowed.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		_ = v.BindEnv(key, EnvName(key))
	}
}

// Problems returns descriptions of config.yaml entries that do not
// fit the configuration, such as misspelled keys or values of a wrong
// type.
func Problems(homeDir string) ([]string, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg config.Config
	err = dec.Decode(&cfg)
	if err == nil || errors.Is(err, io.EOF) {
		return nil, nil
	}

	var tErr *yaml.TypeError
	if errors.As(err, &tErr) {
		return tErr.Errors, nil
	}
	return nil, iofs.ReadFileError(cfgPath, err)
}
