package factory

import (
	"github.com/allape/openkscan/config"
	"github.com/allape/openkscan/kscan"
	"github.com/allape/openkscan/kscan/script"
	"github.com/allape/openkscan/kscan/source"
	"time"
)

func ScanDriverFromConfig(conf config.Config, device *kscan.Device, src source.Source) (*script.Driver, error) {
	if conf.Scan.ResumeOnParseError {
		l.Warn().Println("resume_on_parse_error is set, malformed commands will not stall the scan loop")
	}

	driver := script.New(device, src, script.Config{
		EventPeriod:        time.Duration(conf.Scan.EventPeriod) * time.Millisecond,
		ExitAfter:          conf.Scan.ExitAfter,
		ResumeOnParseError: conf.Scan.ResumeOnParseError,
	})

	err := driver.Init()
	if err != nil {
		return nil, err
	}

	return driver, nil
}
