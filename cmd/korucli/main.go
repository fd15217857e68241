package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/device"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Error("device listing failed")
		os.Exit(1)
	}
}

func run() error {
	configuration, err := core.ConfigurationFromEnv(core.DefaultConfiguration())
	if err != nil {
		return err
	}

	driver, err := device.NewVulkan(nil)
	if err != nil {
		return err
	}

	requirements := core.DefaultRequirements()
	instance, err := core.CreateInstance(driver, nil, configuration.Application, requirements, false, log.StandardLogger())
	if err != nil {
		return err
	}
	defer driver.DestroyInstance(instance)

	infos, err := core.DescribePhysicalDevices(driver, instance, requirements)
	if err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", bytes)
	return nil
}
