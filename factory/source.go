package factory

import (
	"fmt"
	"github.com/allape/gogger"
	"github.com/allape/openkscan/config"
	"github.com/allape/openkscan/kscan/source"
	"github.com/allape/openkscan/kscan/source/pipe"
	"github.com/allape/openkscan/kscan/source/reader"
	"github.com/allape/openkscan/kscan/source/serialport"
	"os"
)

var l = gogger.New("factory")

const DefaultBaud = 9600

func SourceFromConfig(conf config.Config) (src source.Source, err error) {
	switch conf.Source.Type {
	case config.SourceReader:
		if conf.Source.Src == config.StdinSrc {
			l.Info().Println("command source is stdin")
			src = reader.New(os.Stdin)
		} else {
			l.Info().Println("command source is file:", conf.Source.Src)
			file, err := os.Open(conf.Source.Src)
			if err != nil {
				return nil, err
			}
			src = reader.New(file)
		}
	case config.SourceSerialPort:
		l.Info().Println("command source is serial port:", conf.Source.Src)
		baud, err := config.SerialPortExt(conf.Source.Ext).GetBaud(DefaultBaud)
		if err != nil {
			return nil, err
		}
		src = serialport.New(conf.Source.Src, baud)
	case config.SourcePipe:
		l.Info().Println("command source is an in-memory pipe, feed it over the control server")
		src = pipe.New()
	default:
		return nil, fmt.Errorf("unknown source type: %s", conf.Source.Type)
	}

	err = src.Open()
	if err != nil {
		return nil, err
	}

	return src, nil
}
