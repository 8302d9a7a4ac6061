package config

import (
	"fmt"
	"time"
)

// LDAPConfig represents the configuration for the directory connection
type LDAPConfig struct {
	Host               string
	Port               int
	BaseDN             string
	InsecureSkipVerify bool
	BindDN             string
	BindPassword       string
	Timeout            time.Duration
}

// GetLDAP returns the directory connection configuration
func (c *Config) GetLDAP() (LDAPConfig, error) {
	timeout, err := c.GetDuration("ldap.timeout")
	if err != nil {
		return LDAPConfig{}, fmt.Errorf("invalid ldap.timeout value %q: %w", c.GetString("ldap.timeout"), err)
	}

	return LDAPConfig{
		Host:               c.GetString("ldap.host"),
		Port:               c.GetInt("ldap.port"),
		BaseDN:             c.GetString("ldap.base_dn"),
		InsecureSkipVerify: c.GetBool("ldap.insecure_skip_verify"),
		BindDN:             c.GetString("ldap.bind_dn"),
		BindPassword:       c.GetString("ldap.bind_password"),
		Timeout:            timeout,
	}, nil
}

// Validate checks that the three required connection values are present
func (c LDAPConfig) Validate() error {
	if c.Host == "" || c.Port <= 0 || c.BaseDN == "" {
		return fmt.Errorf("missing directory connection settings: "+
			"ldap.host, ldap.port and ldap.base_dn must all be set "+
			"(got host=%q, port=%d, base_dn=%q)", c.Host, c.Port, c.BaseDN)
	}
	return nil
}

// URL returns the ldaps URL for the configured host and port
func (c LDAPConfig) URL() string {
	return fmt.Sprintf("ldaps://%s:%d", c.Host, c.Port)
}
