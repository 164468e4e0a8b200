package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
	dotEnvPath      = ".env"
)

// Duration читается из yaml как строка time.ParseDuration ("5m", "1h30m")
// или как число секунд (целое или дробное).
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LoadConfig подгружает .env (если есть), выбирает yaml по ENV и накладывает env/флаги.
func LoadConfig(c any) error {
	if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
	}

	return parseConfig(c, configPathFor(os.Getenv("ENV")), CommonParseOptions)
}

func configPathFor(env string) string {
	switch env {
	case "local":
		return localConfigPath
	case "dev":
		return devConfigPath
	default:
		return configPath
	}
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return ParseOrExit("aweme", "Бот и HTTP API для получения ссылок на видео TikTok", "", c, opts)
}

func readFile(cfg any, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			logrus.Error(cerr)
		}
	}()

	if err = yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// UnmarshalYAML реализует InterfaceUnmarshaler: сначала строка длительности, затем число секунд.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		if dur, err := time.ParseDuration(s); err == nil {
			*d = Duration(dur)

			return nil
		}
	}

	var f float64
	if err := unmarshal(&f); err == nil {
		*d = Duration(time.Duration(f * float64(time.Second)))

		return nil
	}

	return fmt.Errorf("unsupported duration format")
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
