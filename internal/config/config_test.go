package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cf, err := loadConfig()
	require.NoError(t, err)

	require.Equal(t, "8080", cf.ServerPort)
	require.Equal(t, "backoffice", cf.DbName)
	require.Equal(t, "localhost", cf.DbHost)
	require.Equal(t, "5432", cf.DbPort)
}

func TestBrokers(t *testing.T) {
	cases := []struct {
		raw      string
		expected []string
	}{
		{"", nil},
		{"localhost:9092", []string{"localhost:9092"}},
		{"a:9092, b:9092", []string{"a:9092", "b:9092"}},
		{" , a:9092,", []string{"a:9092"}},
	}

	for _, c := range cases {
		cf := &Config{KafkaBrokers: c.raw}
		require.Equal(t, c.expected, cf.Brokers(), c.raw)
	}
}
