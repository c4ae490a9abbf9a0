package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"syscall"

	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/pkg/dmc"
	"github.com/iics-tools/dmc/pkg/dmcclient"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
	OutputFormatTable = constants.FormatTable

	defaultJSONIndent = 2
)

// CreateClient logs in with the configured credentials and returns the
// unified client. The password is prompted for when it is not configured
// and stdin is a terminal.
func CreateClient(ctx context.Context) (dmc.Client, error) {
	config, err := loadClientConfig()
	if err != nil {
		return nil, err
	}

	client, err := dmcclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	return client, nil
}

func loadClientConfig() (*dmc.Config, error) {
	username := viper.GetString("username")
	if username == "" {
		return nil, constants.ErrUsernameRequired
	}

	password := viper.GetString("password")
	if password == "" {
		prompted, err := promptPassword()
		if err != nil {
			return nil, err
		}

		password = prompted
	}

	if err := validateOutputFormat(viper.GetString("output")); err != nil {
		return nil, err
	}

	logger := newLogger(os.Stderr, viper.GetString("log_level"))

	return &dmc.Config{
		Username:    username,
		Password:    password,
		AutoRetry:   viper.GetBool("auto_retry"),
		LoginURL:    viper.GetString("login_url"),
		V1ServerURL: viper.GetString("v1_server_url"),
		Timeout:     viper.GetDuration("timeout"),
		Debug:       viper.GetBool("debug"),
		Logger:      dmc.NewZerologLogger(logger),
	}, nil
}

func promptPassword() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", constants.ErrPasswordRequired
	}

	_, _ = os.Stderr.WriteString("Password: ")

	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	_, _ = os.Stderr.WriteString("\n")

	if len(passwordBytes) == 0 {
		return "", constants.ErrPasswordRequired
	}

	return string(passwordBytes), nil
}

// newLogger builds the console logger handed to the client. Unknown levels
// fall back to warn.
func newLogger(out io.Writer, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}

	if viper.GetBool("debug") && parsed > zerolog.DebugLevel {
		parsed = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}

func validateOutputFormat(format string) error {
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML, "":
		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// maskSecret keeps the first few characters of a secret.
func maskSecret(secret string) string {
	if secret == "" {
		return constants.NotAvailable
	}

	if len(secret) <= constants.StringTruncationLimit {
		return constants.MaskedSecret
	}

	return secret[:constants.StringTruncationLimit] + constants.MaskedSecret
}

// parseMapping parses ROLE=GROUP[,GROUP...] into a SAML group mapping.
func parseMapping(raw string) (dmc.SAMLGroupMapping, error) {
	role, groups, found := strings.Cut(raw, "=")

	role = strings.TrimSpace(role)
	if !found || role == "" {
		return dmc.SAMLGroupMapping{}, fmt.Errorf("%w: %q", constants.ErrInvalidMapping, raw)
	}

	mapping := dmc.SAMLGroupMapping{RoleName: role, SAMLGroupName: []string{}}

	for _, group := range strings.Split(groups, ",") {
		group = strings.TrimSpace(group)
		if group != "" {
			mapping.SAMLGroupName = append(mapping.SAMLGroupName, group)
		}
	}

	if len(mapping.SAMLGroupName) == 0 {
		return dmc.SAMLGroupMapping{}, fmt.Errorf("%w: %q", constants.ErrInvalidMapping, raw)
	}

	return mapping, nil
}

func parseMappings(raw []string) ([]dmc.SAMLGroupMapping, error) {
	mappings := make([]dmc.SAMLGroupMapping, 0, len(raw))

	for _, entry := range raw {
		mapping, err := parseMapping(entry)
		if err != nil {
			return nil, err
		}

		mappings = append(mappings, mapping)
	}

	return mappings, nil
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer[T any](data T) error {
	return renderJSON(os.Stdout, data)
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer[T any](data T) error {
	return renderYAML(os.Stdout, data)
}

func renderJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

func renderYAML(out io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// outputRecords renders a list in the configured format. columns are the
// record keys shown as table columns.
func outputRecords(records dmc.Records, noun string, columns ...string) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(records)
	case OutputFormatYAML:
		return StandardYAMLRenderer(records)
	default:
		return renderRecordsTable(os.Stdout, records, noun, columns)
	}
}

// outputRecord renders a single record in the configured format.
func outputRecord(record dmc.Record) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(record)
	case OutputFormatYAML:
		return StandardYAMLRenderer(record)
	default:
		return renderRecordTable(os.Stdout, record)
	}
}

// outputResult reports the outcome of a mutation.
func outputResult(action string, ok bool) error {
	result := map[string]interface{}{"action": action, "success": ok}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		return renderResult(os.Stdout, action, ok)
	}
}

func renderRecordsTable(out io.Writer, records dmc.Records, noun string, columns []string) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintf(out, "No %s found\n", noun)

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header(headers(columns)...)

	for _, record := range records {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, cell(record, column))
		}

		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderRecordTable(out io.Writer, record dmc.Record) error {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(key, cell(record, key))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderResult(out io.Writer, action string, ok bool) error {
	status := "completed"
	if !ok {
		status = "not confirmed by the server"
	}

	_, err := fmt.Fprintf(out, "%s %s\n", action, status)

	return err
}

func cell(record dmc.Record, key string) string {
	value := record.String(key)
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func headers(columns []string) []any {
	names := make([]any, 0, len(columns))
	for _, column := range columns {
		names = append(names, strings.ToUpper(column))
	}

	return names
}

// lookupFunc fetches one record by id or by name.
type lookupFunc func(ctx context.Context, key string) (dmc.Record, error)

// getByIDOrName resolves the id argument or the --name flag and renders the
// record it finds.
func getByIDOrName(args []string, name, noun string, byID, byName lookupFunc) error {
	id, err := idOrName(args, name)
	if err != nil {
		return err
	}

	ctx := context.Background()

	lookup, key := byName, name
	if id != "" {
		lookup, key = byID, id
	}

	record, err := lookup(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", noun, err)
	}

	return outputRecord(record)
}

// idOrName returns the id argument, or "" when the lookup is by name.
func idOrName(args []string, name string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	if name == "" {
		return "", constants.ErrNameOrIDRequired
	}

	return "", nil
}
