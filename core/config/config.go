package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	dataFs afero.Fs

	Prompt      string `json:"prompt" validate:"required"`
	ProgramName string `json:"program_name" validate:"required,alphanum"`
	Color       string `json:"color" validate:"oneof=always auto never"`
	EventLog    string `json:"event_log"`
	Recording   string `json:"recording"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Marshal renders the configuration as YAML.
func (c *Configuration) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SetFs sets the filesystem that logs and recordings are written to.
func (c *Configuration) SetFs(fs afero.Fs) {
	c.dataFs = fs
}

func (c *Configuration) fs() afero.Fs {
	if c.dataFs == nil {
		return afero.NewOsFs()
	}
	return c.dataFs
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// CreateRecording truncates and opens the session recording.
func (c *Configuration) CreateRecording() (afero.File, error) {
	return c.fs().Create(c.Recording)
}

// Default returns the built-in configuration with files resolved relative
// to dir.
func Default(dir string) *Configuration {
	out := defaultConfig()
	out.SetFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
