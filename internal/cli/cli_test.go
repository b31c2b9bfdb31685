package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bank-statement-generator/internal/config"
	"bank-statement-generator/internal/models"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	app *App
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupSuite() {
	pterm.DisableStyling()
}

func (s *CLITestSuite) TearDownSuite() {
	pterm.EnableStyling()
}

func (s *CLITestSuite) SetupTest() {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "testing"},
		Generator: config.GeneratorConfig{
			BankName:          "Cli Test Bank",
			RoutingNumber:     "987654321",
			AccountHolder:     "Jane Roe",
			StatementCount:    models.DefaultStatementCount,
			TransferFrequency: models.TransferFrequencyMedium,
		},
	}
	s.app = NewApp(cfg, nil)
}

func (s *CLITestSuite) execute(args ...string) (string, error) {
	cmd := NewRootCmd(s.app)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLITestSuite) TestGenerate_JSON() {
	output, err := s.execute("generate", "--year", "2024", "--month", "1", "--count", "2", "--seed", "99", "--credit", "0")
	s.Require().NoError(err)

	var result models.GenerationResult
	s.Require().NoError(json.Unmarshal([]byte(output), &result))
	s.Equal(int64(99), result.Seed)
	s.Require().Len(result.Accounts, 2)
	s.Equal("Cli Test Bank", result.Accounts[0].BankName)
	s.Equal("Jane Roe", result.Accounts[0].AccountHolder)
	s.Equal("987654321", result.Accounts[0].RoutingNumber)
	s.Len(result.Accounts[0].Statements, 2)
	s.Equal(2023, result.Months[0].Year)
}

func (s *CLITestSuite) TestGenerate_SameSeedSameOutput() {
	args := []string{"generate", "--year", "2024", "--month", "5", "--seed", "5", "--format", "csv"}

	first, err := s.execute(args...)
	s.Require().NoError(err)
	second, err := s.execute(args...)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *CLITestSuite) TestGenerate_CSVToFile() {
	path := filepath.Join(s.T().TempDir(), "out.csv")

	output, err := s.execute("generate", "--format", "CSV", "--output", path, "--seed", "1", "--count", "30")
	s.Require().NoError(err)
	s.Empty(output)

	file, err := os.Open(path)
	s.Require().NoError(err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	s.Require().NoError(err)
	s.Equal("account_id", records[0][0])
	s.Greater(len(records), models.MaxStatementCount)
}

func (s *CLITestSuite) TestGenerate_Errors() {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unsupported format", []string{"generate", "--format", "pdf"}, "unsupported format"},
		{"month out of range", []string{"generate", "--month", "13"}, "month must be between 1 and 12"},
		{"no accounts", []string{"generate", "--checking", "0", "--savings", "0", "--credit", "0"}, "at least one account"},
		{"bad frequency", []string{"generate", "--frequency", "daily"}, "invalid transfer frequency"},
		{"bad log level", []string{"generate", "--log-level", "loud"}, "invalid log level"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.execute(tt.args...)
			s.Require().Error(err)
			s.Contains(err.Error(), tt.want)
		})
	}
}

func (s *CLITestSuite) TestShow_Summary() {
	output, err := s.execute("show", "--summary", "--seed", "3", "--year", "2024", "--month", "3")
	s.Require().NoError(err)

	s.Contains(output, "seed 3")
	s.Contains(output, "checking-0")
	s.Contains(output, "savings-0")
	s.Contains(output, "credit-0")
}

func (s *CLITestSuite) TestShow_SingleStatement() {
	output, err := s.execute("show", "--seed", "3", "--year", "2024", "--month", "3", "--account", "checking-0", "--statement", "3")
	s.Require().NoError(err)

	s.Contains(output, "Checking Account March 2024")
	s.NotContains(output, "January 2024")
	s.Contains(output, "OPENING BALANCE")
	s.Contains(output, "CLOSING BALANCE")
	s.Contains(output, "Checks")
}
