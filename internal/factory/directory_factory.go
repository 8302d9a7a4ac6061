package factory

import (
	"go.uber.org/zap"

	"github.com/mikey/student-lookup/internal/adapters/directory"
	"github.com/mikey/student-lookup/internal/config"
	"github.com/mikey/student-lookup/internal/core"
)

// DirectoryFactory creates directory searchers
type DirectoryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewDirectoryFactory creates a new directory factory
func NewDirectoryFactory(cfg *config.Config, logger *zap.Logger) *DirectoryFactory {
	return &DirectoryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSearcher validates the connection configuration and creates the LDAP
// directory searcher
func (f *DirectoryFactory) CreateSearcher() (core.DirectorySearcher, error) {
	ldapCfg, err := f.cfg.GetLDAP()
	if err != nil {
		return nil, err
	}
	if err := ldapCfg.Validate(); err != nil {
		return nil, err
	}

	if ldapCfg.InsecureSkipVerify {
		f.logger.Warn("Directory server certificate verification is disabled",
			zap.String("host", ldapCfg.Host))
	}

	return directory.NewSearcher(ldapCfg, f.logger), nil
}
