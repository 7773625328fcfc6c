package config

import (
	"github.com/allape/openkscan/logger"
	"github.com/pelletier/go-toml/v2"
	"os"
)

var log = logger.New("[config]")

const DefaultConfigPath = "kscan.toml"

type SourceType string

const (
	SourceReader     SourceType = "reader"
	SourceSerialPort SourceType = "serialport"
	SourcePipe       SourceType = "pipe"
)

// StdinSrc is the reader source path that maps to os.Stdin.
const StdinSrc = "-"

type Scan struct {
	// EventPeriod
	// Delay in milliseconds between auto-reschedules after a press or release
	// has been dispatched. Also used as the initial arming delay.
	EventPeriod int `toml:"event_period"`
	// ExitAfter
	// Terminate the host process once the command input is exhausted.
	// When unset the driver goes idle instead and can be re-armed.
	ExitAfter bool `toml:"exit_after"`
	// ResumeOnParseError
	// A malformed command normally stalls the scan loop without signalling
	// failure. Setting this re-arms the loop after event_period instead.
	ResumeOnParseError bool `toml:"resume_on_parse_error"`
}

type Source struct {
	Type SourceType `toml:"type"`
	Src  string     `toml:"src"`
	Ext  ExtMap     `toml:"ext"`
}

type HTTP struct {
	// Addr of the control server, empty disables it
	Addr string `toml:"addr"`
	// Path of the websocket command feed
	Path string `toml:"path"`
	Cors bool   `toml:"cors"`
}

type Config struct {
	Scan   Scan   `toml:"scan"`
	Source Source `toml:"source"`
	HTTP   HTTP   `toml:"http"`
}

func GetConfig() (Config, error) {
	configFile := DefaultConfigPath
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	log.Println("reading config file:", configFile)

	config := Config{
		Scan: Scan{
			EventPeriod: 5,
			ExitAfter:   false,
		},
		Source: Source{
			Type: SourceReader,
			Src:  StdinSrc,
		},
		HTTP: HTTP{
			Addr: "",
			Path: "/feed",
			Cors: false,
		},
	}

	_, err := os.Stat(configFile)
	if err != nil {
		return config, err
	}

	configData, err := os.ReadFile(configFile)
	if err != nil {
		return config, err
	}

	err = toml.Unmarshal(configData, &config)
	if err != nil {
		return config, err
	}

	log.Println("use config:", config)

	return config, nil
}
