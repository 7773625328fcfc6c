package main

import (
	"github.com/allape/openkscan/config"
	"github.com/allape/openkscan/factory"
	"github.com/allape/openkscan/kscan"
	"github.com/allape/openkscan/logger"
	"os"
	"os/signal"
	"syscall"
)

var log = logger.New("[main]")

func main() {
	conf, err := config.GetConfig()
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("config file not found, using defaults")
		} else {
			log.Fatalln("get config:", err)
		}
	}

	device := &kscan.Device{
		Name: "openkscan",
	}

	src, err := factory.SourceFromConfig(conf)
	if err != nil {
		log.Fatalln("source from config:", err)
	}
	defer func() {
		if src != nil {
			_ = src.Close()
		}
	}()

	driver, err := factory.ScanDriverFromConfig(conf, device, src)
	if err != nil {
		log.Fatalln("scan driver from config:", err)
	}

	err = driver.Configure(func(dev *kscan.Device, row, col int, pressed bool) {
		action := "release"
		if pressed {
			action = "press"
		}
		log.Printf("%s: %s row %d col %d", dev.Name, action, row, col)
	})
	if err != nil {
		log.Fatalln("configure scan driver:", err)
	}

	if conf.HTTP.Addr != "" {
		go func() {
			log.Fatalln(RunControlServer(conf, driver, src))
		}()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	log.Println("started")

	select {
	case status := <-driver.Done():
		_ = driver.Disable()
		if status.Err != nil {
			log.Println("scan stopped:", status.Err)
		}
		log.Println("exiting with code", status.Code)
		os.Exit(status.Code)
	case sig := <-sigs:
		_ = driver.Disable()
		log.Println("exiting with", sig)
	}
}
