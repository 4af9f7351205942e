package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRegisteredInstancesFromEnvironment(t *testing.T) {
	t.Setenv("TRIPWISE_ROUTING_DATASOURCES_PATH", "")
	t.Setenv("TRIPWISE_ROUTING_SERVICE_URLS", "http://gcp.example.com:5002, http://azure.example.com:5003")

	instances := GetRegisteredInstances()

	require.Len(t, instances, 2)
	require.Equal(t, "http://gcp.example.com:5002", instances[0].URL)
	require.Equal(t, "http://azure.example.com:5003", instances[1].URL)
}

func TestGetRegisteredInstancesFromYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routing-services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`identifier: gcp
provider: Google Cloud
url: http://127.0.0.1:5002
---
identifier: azure
provider: Microsoft Azure
url: http://127.0.0.1:5003
`), 0644))

	t.Setenv("TRIPWISE_ROUTING_DATASOURCES_PATH", path)

	instances := GetRegisteredInstances()

	require.Len(t, instances, 2)
	require.Equal(t, "gcp", instances[0].Identifier)
	require.Equal(t, "Google Cloud", instances[0].Provider)
	require.Equal(t, "http://127.0.0.1:5003", instances[1].URL)
}

func TestLoadInstancesFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routing-services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`identifier: gcp
url: http://127.0.0.1:5002
---
identifier: [unterminated
`), 0644))

	_, err := loadInstancesFile(path)
	require.Error(t, err)
}
