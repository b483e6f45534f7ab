package testsupport

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFixture returns the raw bytes of the fixture at path.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadYAML decodes the YAML fixture at path into v.
func LoadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}
