package gateway

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/util"
	"gopkg.in/yaml.v3"
)

// RoutingInstance is one deployed routing service the gateway can
// dispatch recommendation requests to.
type RoutingInstance struct {
	Identifier string `yaml:"identifier"`
	Provider   string `yaml:"provider"`
	URL        string `yaml:"url"`
}

// GetRegisteredInstances loads the routing pool from a YAML datasource
// file when one is configured, otherwise from the comma separated
// TRIPWISE_ROUTING_SERVICE_URLS list.
func GetRegisteredInstances() []RoutingInstance {
	env := util.GetEnvironmentVariables()

	if path := env["TRIPWISE_ROUTING_DATASOURCES_PATH"]; path != "" {
		instances, err := loadInstancesFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to load routing datasources file")
		}

		return instances
	}

	urls := util.GetEnvironmentDefault("TRIPWISE_ROUTING_SERVICE_URLS", "http://127.0.0.1:5002,http://127.0.0.1:5003")

	var instances []RoutingInstance
	for _, url := range strings.Split(urls, ",") {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}

		instances = append(instances, RoutingInstance{
			Identifier: url,
			URL:        url,
		})
	}

	return instances
}

func loadInstancesFile(path string) ([]RoutingInstance, error) {
	instancesYaml, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var instances []RoutingInstance

	decoder := yaml.NewDecoder(bytes.NewReader(instancesYaml))
	for {
		var instance RoutingInstance

		err := decoder.Decode(&instance)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		instances = append(instances, instance)
	}

	return instances, nil
}
