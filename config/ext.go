package config

import (
	"strconv"
)

type ExtMap map[string]any

type SerialPortExt ExtMap

func (e SerialPortExt) GetBaud(defaultValue int) (int, error) {
	v, ok := e["baud"]
	if !ok {
		return defaultValue, nil
	}

	baud, ok := v.(string)
	if !ok {
		return defaultValue, nil
	}

	return strconv.Atoi(baud)
}
