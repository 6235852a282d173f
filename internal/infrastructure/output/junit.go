package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/entrig/entrig/internal/domain/entities"
)

// JUnitFormatter formats setup reports as JUnit XML, one test case per
// patched target, so CI systems can surface a misconfigured project.
type JUnitFormatter struct {
	writer io.Writer
}

// NewJUnitFormatter creates a new JUnit formatter.
func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	return &JUnitFormatter{
		writer: w,
	}
}

// JUnitTestSuites JUnit XML structures
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// Format writes the report as JUnit XML.
func (f *JUnitFormatter) Format(report *entities.SetupReport) error {
	suite := JUnitTestSuite{
		Name:     fmt.Sprintf("entrig setup ios (%s)", report.Layout.AppName),
		Tests:    report.Summary.Total,
		Failures: report.Summary.Failed,
		Skipped:  report.Summary.Skipped,
		Time:     report.Duration.Seconds(),
		Properties: []JUnitProperty{
			{Name: "run_id", Value: report.RunID.String()},
			{Name: "name_source", Value: string(report.Layout.NameSource)},
			{Name: "dry_run", Value: fmt.Sprintf("%t", report.DryRun)},
		},
	}

	for _, result := range report.Results {
		c := JUnitTestCase{
			Name:      result.Target.Declaration(),
			ClassName: string(result.Target),
		}

		switch {
		case result.Status.IsFailure():
			c.Failure = &JUnitFailure{
				Message: result.Message,
				Type:    string(result.Status),
				Content: report.Layout.Rel(result.Path),
			}
		case result.Status.IsSkipped():
			c.Skipped = &JUnitSkipped{
				Message: result.Message,
			}
		default:
			c.SystemOut = fmt.Sprintf("%s: %s", result.Status, report.Layout.Rel(result.Path))
		}

		suite.TestCases = append(suite.TestCases, c)
	}

	suites := JUnitTestSuites{
		Name:       "Entrig Setup",
		Tests:      report.Summary.Total,
		Failures:   report.Summary.Failed,
		Time:       report.Duration.Seconds(),
		TestSuites: []JUnitTestSuite{suite},
	}

	_, err := f.writer.Write([]byte(xml.Header))
	if err != nil {
		return err
	}

	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}

	_, err = f.writer.Write([]byte("\n"))
	return err
}
