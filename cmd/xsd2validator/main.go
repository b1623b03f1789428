// Package main provides the CLI entrypoint for xsd2validator.
//
// xsd2validator reads XML Schema documents and writes Symfony validation
// metadata (YAML) for the classes generated from their complex types:
//
//	xsd2validator convert --config xsd2validator.yaml order.xsd
//	xsd2validator convert --ns-map 'urn:shop;Shop\Model' --ns-dest 'Shop\Model;build' order.xsd
//	xsd2validator inspect order.xsd
package main

import (
	"os"

	"github.com/untillpro/goutils/logger"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
