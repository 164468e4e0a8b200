package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

type parseOptions struct {
	Parent                  *parseOptions
	EnvPrefix               string
	EnvIsDisabled           bool
	FlagPrefix              string
	Category                string
	AlreadyHasDefaultValues bool
	RequiredByDefault       bool
}

// Для приложений с yaml конфигом + env
var CommonParseOptions = parseOptions{
	AlreadyHasDefaultValues: true,
	RequiredByDefault:       true,
}

// Для приложений только с env
var DefaultParseOptions = parseOptions{
	RequiredByDefault: true,
}

const (
	tagNameEnv        = "env"        // часть имени env после префикса. env:"-" - без env
	tagNameEnvPrefix  = "envprefix"  // перезаписывает префикс env (envprefix:"APP2", envprefix:"")
	tagNameFlag       = "flag"       // часть имени флага после префикса. flag:"-" - без флага
	tagNameFlagPrefix = "flagprefix" // перезаписывает префикс флага
	tagNameCLI        = "cli"        // hidden,required,optional через запятую. cli:"-" - игнор поля
	tagNameUsage      = "usage"      // описание в help
	tagNameDefault    = "default"    // дефолт, только без yaml конфига
	tagNameCategory   = "category"   // категория в help, только для структур
)

var durationTypes = map[reflect.Type]bool{
	reflect.TypeOf(time.Duration(0)): true,
	reflect.TypeOf(Duration(0)):      true,
}

// ParseOrExit разбирает env и флаги поверх cfg, на -help печатает справку и завершает процесс.
//
// opts:
//   - CommonParseOptions - для приложений с yaml конфигом + env.
//   - DefaultParseOptions - для приложений только с env.
func ParseOrExit(name, usage, description string, cfg any, opts parseOptions) error {
	helpWasCalled, err := ParseCLI(name, usage, description, cfg, opts)
	if helpWasCalled && err == nil {
		os.Exit(0)
	}

	return err
}

// ParseCLI разбирает os.Args и env в cfg. Возвращает true, если была напечатана справка.
func ParseCLI(name, usage, description string, cfg any, opts parseOptions) (bool, error) {
	flags, err := parseFlags(cfg, opts)
	if err != nil {
		return false, fmt.Errorf("parseFlags: %w", err)
	}

	var helpWasCalled bool

	original := cli.HelpPrinterCustom
	cli.HelpPrinterCustom = func(w io.Writer, templ string, data any, customFunc map[string]any) {
		helpWasCalled = true

		original(w, templ, data, customFunc)
	}
	defer func() { cli.HelpPrinterCustom = original }()

	cmd := &cli.Command{
		Name:        name,
		Usage:       usage,
		Description: description,
		Flags:       flags,
		Action: func(context.Context, *cli.Command) error {
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		return helpWasCalled, fmt.Errorf("cmd.Run: %w", err)
	}

	return helpWasCalled, nil
}

func parseFlags(c any, opts parseOptions) ([]cli.Flag, error) {
	if c == nil {
		return nil, errors.New("config must not be nil")
	}

	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr {
		return nil, errors.New("config must be pointer")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, errors.New("config must be struct")
	}

	t := v.Type()
	flags := make([]cli.Flag, 0, v.NumField())

	for i := range v.NumField() {
		res, err := parseField(t.Field(i), v.Field(i), opts)
		if err != nil {
			return nil, err
		}

		flags = append(flags, res...)
	}

	return flags, nil
}

type flagOptions[T any] struct {
	Value T
	Dest  *T
	flagOptionsCommon
}

type flagOptionsCommon struct {
	Name       string
	Category   string
	HasValue   bool
	Env        string
	DisableEnv bool
	Usage      string
	Required   bool
	Hidden     bool
}

// valueSource - откуда флаг берёт значение по умолчанию.
type valueSource struct {
	fromConfig   bool
	defaultValue string
	hasDefault   bool
}

func parseField(t reflect.StructField, v reflect.Value, opts parseOptions) ([]cli.Flag, error) {
	cliTag, _ := t.Tag.Lookup(tagNameCLI)
	if cliTag == "-" {
		return nil, nil
	}

	if !v.CanSet() {
		return nil, fmt.Errorf("private field: %s", t.Name)
	}

	if p, ok := t.Tag.Lookup(tagNameFlagPrefix); ok {
		opts.FlagPrefix = p
	}

	if p, ok := t.Tag.Lookup(tagNameEnvPrefix); ok {
		opts.EnvPrefix = p
	}

	flagPrefix := withSeparator(opts.FlagPrefix, "-")
	envPrefix := withSeparator(opts.EnvPrefix, "_")

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}

		v = v.Elem()
	}

	category, ok := t.Tag.Lookup(tagNameCategory)
	switch {
	case ok && v.Kind() != reflect.Struct:
		return nil, fmt.Errorf("category tag is allowed only for structures")
	case !ok && v.Kind() == reflect.Struct:
		category = t.Name
	case !ok:
		category = opts.Category
	}

	required, hidden, err := cliOptions(cliTag, opts.RequiredByDefault)
	if err != nil {
		return nil, fmt.Errorf("flag %v: %w", t.Name, err)
	}

	if v.Kind() == reflect.Struct {
		return parseStruct(t, v, opts, category, flagPrefix, envPrefix, required)
	}

	foc := flagOptionsCommon{
		Name:     flagName(t, flagPrefix),
		Category: category,
		Usage:    t.Tag.Get(tagNameUsage),
		Required: required,
		Hidden:   hidden,
	}
	foc.Env, foc.DisableEnv = envName(t, envPrefix, opts.EnvIsDisabled)

	configValueIsZero := required && v.IsZero() && v.Kind() != reflect.Bool

	src := valueSource{fromConfig: opts.AlreadyHasDefaultValues && !configValueIsZero}
	if !opts.AlreadyHasDefaultValues {
		src.defaultValue, src.hasDefault = t.Tag.Lookup(tagNameDefault)
	}

	return scalarFlag(t.Name, v, foc, src)
}

func parseStruct(
	t reflect.StructField,
	v reflect.Value,
	opts parseOptions,
	category, flagPrefix, envPrefix string,
	required bool,
) ([]cli.Flag, error) {
	envTag, ok := t.Tag.Lookup(tagNameEnv)
	if ok {
		envPrefix += envTag
	} else {
		envPrefix += toScreamingSnakeCase(t.Name)
	}

	if flagTag, ok := t.Tag.Lookup(tagNameFlag); ok {
		flagPrefix += flagTag
	} else {
		flagPrefix += toKebabCase(t.Name)
	}

	return parseFlags(v.Addr().Interface(), parseOptions{
		Parent:                  &opts,
		Category:                category,
		EnvPrefix:               envPrefix,
		EnvIsDisabled:           opts.EnvIsDisabled || envTag == "-",
		FlagPrefix:              flagPrefix,
		RequiredByDefault:       required,
		AlreadyHasDefaultValues: opts.AlreadyHasDefaultValues,
	})
}

func scalarFlag(name string, v reflect.Value, foc flagOptionsCommon, src valueSource) ([]cli.Flag, error) {
	addr := v.Addr()

	if durationTypes[v.Type()] {
		return build(name, addr, foc, src, time.ParseDuration, durationFlag)
	}

	switch v.Kind() {
	case reflect.String:
		return build(name, addr, foc, src, parseString, stringFlag)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return nil, fmt.Errorf("slice type %v is unsupported", v.Type().Elem().Kind())
		}

		return build(name, addr, foc, src, parseStringSlice, stringSliceFlag)
	case reflect.Bool:
		return build(name, addr, foc, src, strconv.ParseBool, boolFlag)
	case reflect.Int:
		return build(name, addr, foc, src, strconv.Atoi, intFlag)
	case reflect.Int64:
		return build(name, addr, foc, src, parseInt64, int64Flag)
	case reflect.Uint:
		return build(name, addr, foc, src, parseUint[uint](0), uintFlag)
	case reflect.Uint16:
		return build(name, addr, foc, src, parseUint[uint16](16), uint16Flag)
	case reflect.Uint64:
		return build(name, addr, foc, src, parseUint[uint64](64), uint64Flag)
	case reflect.Float64:
		return build(name, addr, foc, src, parseFloat64, float64Flag)
	default:
		return nil, fmt.Errorf("type %v is unsupported", v.Type())
	}
}

func build[T any, F cli.Flag](
	name string,
	addr reflect.Value,
	foc flagOptionsCommon,
	src valueSource,
	parse func(string) (T, error),
	newFlag func(flagOptions[T]) F,
) ([]cli.Flag, error) {
	fo, err := bind(addr, foc, src, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return []cli.Flag{newFlag(fo)}, nil
}

// bind приводит поле к *T (для "type T1 T2" через конвертацию указателя)
// и выбирает значение по умолчанию: из конфига или из тега default.
func bind[T any](addr reflect.Value, foc flagOptionsCommon, src valueSource, parse func(string) (T, error)) (flagOptions[T], error) {
	var zero T

	ptrType := reflect.TypeOf(&zero)
	if !addr.CanConvert(ptrType) {
		return flagOptions[T]{}, fmt.Errorf("failed to cast %v", ptrType)
	}

	dst, ok := addr.Convert(ptrType).Interface().(*T)
	if !ok {
		return flagOptions[T]{}, fmt.Errorf("failed to cast %v", ptrType)
	}

	fo := flagOptions[T]{
		flagOptionsCommon: foc,
		Dest:              dst,
	}

	switch {
	case src.fromConfig:
		fo.HasValue = true
		fo.Value = *dst
	case src.hasDefault:
		v, err := parse(src.defaultValue)
		if err != nil {
			return fo, fmt.Errorf("invalid default %q: %w", src.defaultValue, err)
		}

		fo.HasValue = true
		fo.Value = v
	}

	if fo.HasValue {
		fo.Required = false
	}

	return fo, nil
}

func cliOptions(tag string, requiredByDefault bool) (required, hidden bool, err error) {
	var optional bool

	if tag != "" {
		options := strings.Split(tag, ",")
		required = slices.Contains(options, "required")
		optional = slices.Contains(options, "optional")
		hidden = slices.Contains(options, "hidden")
	}

	if !optional {
		required = required || requiredByDefault
	}

	if hidden && required {
		return false, false, errors.New("must not be hidden and required at the same time, add \"optional\" to cli tag")
	}

	return required, hidden, nil
}

func flagName(t reflect.StructField, prefix string) string {
	name, ok := t.Tag.Lookup(tagNameFlag)

	switch {
	case !ok:
		return prefix + toKebabCase(t.Name)
	case name == "-":
		return ""
	default:
		return prefix + name
	}
}

func envName(t reflect.StructField, prefix string, disabled bool) (string, bool) {
	if disabled {
		return "", true
	}

	name, ok := t.Tag.Lookup(tagNameEnv)

	switch {
	case !ok:
		return prefix + toScreamingSnakeCase(t.Name), false
	case name == "-":
		return "", true
	default:
		return prefix + name, false
	}
}

func withSeparator(prefix, sep string) string {
	if prefix == "" {
		return ""
	}

	return prefix + sep
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseStringSlice(s string) ([]string, error) {
	return strings.Split(s, ","), nil
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseUint[T uint | uint16 | uint64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bitSize)

		return T(v), err
	}
}

func sources(o flagOptionsCommon) cli.ValueSourceChain {
	if o.DisableEnv {
		return cli.ValueSourceChain{}
	}

	return cli.EnvVars(o.Env)
}

func stringFlag(o flagOptions[string]) *cli.StringFlag {
	return &cli.StringFlag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func stringSliceFlag(o flagOptions[[]string]) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func boolFlag(o flagOptions[bool]) *cli.BoolFlag {
	return &cli.BoolFlag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func intFlag(o flagOptions[int]) *cli.IntFlag {
	return &cli.IntFlag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func int64Flag(o flagOptions[int64]) *cli.Int64Flag {
	return &cli.Int64Flag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func uintFlag(o flagOptions[uint]) *cli.UintFlag {
	return &cli.UintFlag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func uint16Flag(o flagOptions[uint16]) *cli.Uint16Flag {
	return &cli.Uint16Flag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func uint64Flag(o flagOptions[uint64]) *cli.Uint64Flag {
	return &cli.Uint64Flag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func float64Flag(o flagOptions[float64]) *cli.FloatFlag {
	return &cli.FloatFlag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

func durationFlag(o flagOptions[time.Duration]) *cli.DurationFlag {
	return &cli.DurationFlag{Name: o.Name, Category: o.Category, Destination: o.Dest, Value: o.Value, Usage: o.Usage, Required: o.Required, Hidden: o.Hidden, Sources: sources(o.flagOptionsCommon)}
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}

func toKebabCase(str string) string {
	return strings.ReplaceAll(toSnakeCase(str), "_", "-")
}

func toScreamingSnakeCase(str string) string {
	return strings.ToUpper(toSnakeCase(str))
}
