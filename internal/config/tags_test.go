package config_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/StounhandJ/aweme_resolver/internal/config"
	"github.com/stretchr/testify/require"
)

var cfg = configTestStruct{
	API:     configAPI{WithEnv: "1", Usage: "1"},
	WithEnv: "1",
}

type (
	configTestStruct struct {
		API configAPI `yaml:"api" category:"ConfigAPI"`

		WithEnv    string `yaml:"test-with-env" env:"TEST-WITH-ENV"`
		EnvPrefix  string `yaml:"env_prefix" envprefix:"ENVPREFIX" default:"env"`
		NewFlag    uint16 `yaml:"new_flag" flag:"tag-new-flag"`
		FlagPrefix string `yaml:"flag_prefix" flagprefix:"flag-prefix" default:"flag"`
	}

	storage struct {
		User     string `yaml:"user" cli:"required" default:"U"`
		Database int    `yaml:"database" cli:"required" default:"11"`
	}

	configAPI struct {
		WithoutEnv string `yaml:"without_env" env:"-" default:"1"`
		WithEnv    string `yaml:"test-with-env" env:"TEST-WITH-ENV"`

		Usage string `yaml:"usage" usage:"usage-usage"`
		Host  string `yaml:"host"`

		Env uint16 `yaml:"env" env:"NEW_ENV"`

		EnvPrefix string `yaml:"env_prefix" envprefix:"CONFIG_ENVPREFIX" default:"env"`

		NewFlag    uint16 `yaml:"new_flag" flag:"tag-new-flag"`
		FlagPrefix string `yaml:"flag_prefix" flagprefix:"flag-prefix" default:"flag"`

		Ignore         string `yaml:"ignore" cli:"-"`
		Hidden         uint16 `yaml:"hidden" cli:"hidden,optional"`
		UintOptional   uint16 `yaml:"uint_optional" cli:"optional"`
		StringOptional string `yaml:"string_optional" cli:"optional"`
	}
)

func TestHelpDefaultParseOptions(t *testing.T) {
	os.Args = []string{os.Args[0], "-help"}

	helpWasCalled, err := config.ParseCLI("a", "b", "c", &cfg, config.DefaultParseOptions)
	require.NoError(t, err)
	require.True(t, helpWasCalled, "help was not called")
}

func TestHelpCommonParseOptions(t *testing.T) {
	os.Args = []string{os.Args[0], "-help"}

	helpWasCalled, err := config.ParseCLI("a", "b", "c", &cfg, config.CommonParseOptions)
	require.NoError(t, err)
	require.True(t, helpWasCalled, "help was not called")
}

func TestCommonParseHelpNotCalled(t *testing.T) {
	os.Args = []string{os.Args[0]}

	helpWasCalled, err := config.ParseCLI("a", "b", "c", &struct{}{}, config.CommonParseOptions)
	require.NoError(t, err)
	require.False(t, helpWasCalled, "help should not called")
}

func TestCommonParseOptionsRequiredDefaultValuesFromConfig(t *testing.T) {
	os.Args = []string{os.Args[0], "command"}

	cfg := storage{}
	_, err := config.ParseCLI("a", "b", "c", &cfg, config.CommonParseOptions)

	require.Error(t, err)
}

func TestDefaultParseOptionsRequiredDefaultValues(t *testing.T) {
	os.Args = []string{os.Args[0], "command"}

	cfg := storage{}
	_, err := config.ParseCLI("a", "b", "c", &cfg, config.DefaultParseOptions)
	require.NoError(t, err)
	require.Equal(t, "U", cfg.User)
	require.Equal(t, 11, cfg.Database)
}

func TestCommonParseOptionsWithEnvAndFlag(t *testing.T) {
	flag := "1"
	storageUser := "USER"
	password := "PASSWORD"

	os.Args = []string{os.Args[0], "command", fmt.Sprintf("-flag=%s", flag)}
	t.Setenv("PASSWORD", password)

	type configTest struct {
		Storage  storage `yaml:"Storage"`
		Password string
		Debug    bool
		Flag     string
	}

	cfg := configTest{Storage: storage{User: storageUser, Database: 1}}

	helpWasCalled, err := config.ParseCLI("a", "b", "c", &cfg, config.CommonParseOptions)
	require.NoError(t, err)

	require.False(t, helpWasCalled, "help was not called")
	require.Equal(t, password, cfg.Password, "password from env is not set")
	require.Equal(t, storageUser, cfg.Storage.User, "user from config is not kept")
	require.Equal(t, flag, cfg.Flag, "flag from args is not set")
}

func TestCommonParseOptionsFlagIsDisabled(t *testing.T) {
	os.Args = []string{os.Args[0], "command"}

	type configTest struct {
		Flag string `flag:"-"`
	}

	cfg := configTest{}

	_, err := config.ParseCLI("a", "b", "c", &cfg, config.CommonParseOptions)
	require.Error(t, err)
	require.Zero(t, cfg.Flag, "flag from args is not set")
}

func TestHiddenAndRequiredRejected(t *testing.T) {
	os.Args = []string{os.Args[0]}

	type configTest struct {
		Secret string `cli:"hidden"`
	}

	_, err := config.ParseCLI("a", "b", "c", &configTest{}, config.DefaultParseOptions)
	require.ErrorContains(t, err, "hidden and required")
}

func TestUnsupportedFieldType(t *testing.T) {
	os.Args = []string{os.Args[0]}

	type configTest struct {
		Ratio float32 `cli:"optional"`
	}

	_, err := config.ParseCLI("a", "b", "c", &configTest{}, config.DefaultParseOptions)
	require.ErrorContains(t, err, "unsupported")
}

func TestApplicationConfigPrefixes(t *testing.T) {
	os.Args = []string{os.Args[0], "--tiktok-user-agent=okhttp", "--listen-addr=:8080"}
	t.Setenv("TIKTOK_HOST", "https://api.example/")
	t.Setenv("APP_LOGLEVEL", "debug")

	cfg := config.Config{
		TikTok: config.TikTok{
			Host:    "https://api22-normal-c-alisg.tiktokv.com/",
			RootURL: "https://tiktok.com",
			Timeout: config.Duration(15 * time.Second),
		},
	}

	_, err := config.ParseCLI("aweme", "", "", &cfg, config.CommonParseOptions)
	require.NoError(t, err)

	require.Equal(t, "https://api.example/", cfg.TikTok.Host, "env overrides yaml")
	require.Equal(t, "https://tiktok.com", cfg.TikTok.RootURL)
	require.Equal(t, 15*time.Second, cfg.TikTok.Timeout.Std())
	require.Equal(t, "okhttp", cfg.TikTok.UserAgent)
	require.Equal(t, ":8080", cfg.Application.ListenAddr)
	require.Equal(t, "debug", cfg.Application.LogLevel)
	require.Empty(t, cfg.Application.TGBotToken)
}

func TestApplicationConfigRequiresTikTokHost(t *testing.T) {
	os.Args = []string{os.Args[0]}

	cfg := config.Config{
		TikTok: config.TikTok{
			RootURL: "https://tiktok.com",
			Timeout: config.Duration(time.Second),
		},
	}

	_, err := config.ParseCLI("aweme", "", "", &cfg, config.CommonParseOptions)
	require.ErrorContains(t, err, "tiktok-host")
}

func TestDurationDefaultTag(t *testing.T) {
	os.Args = []string{os.Args[0]}

	type configTest struct {
		Timeout config.Duration `default:"2m"`
		Plain   time.Duration   `default:"3s"`
	}

	cfg := configTest{}

	_, err := config.ParseCLI("a", "b", "c", &cfg, config.DefaultParseOptions)
	require.NoError(t, err)
	require.Equal(t, 2*time.Minute, cfg.Timeout.Std())
	require.Equal(t, 3*time.Second, cfg.Plain)
}
