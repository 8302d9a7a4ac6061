package directory

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"

	"github.com/go-ldap/ldap/v3"
	"go.uber.org/zap"

	"github.com/mikey/student-lookup/internal/config"
	"github.com/mikey/student-lookup/internal/core"
)

// searchAttributes are the attributes requested for every matched entry
var searchAttributes = []string{"mail", "gecos", "uid"}

// Searcher implements core.DirectorySearcher against an LDAP directory over
// LDAPS. One connection is dialed per search and always released afterwards.
type Searcher struct {
	cfg    config.LDAPConfig
	logger *zap.Logger
}

// NewSearcher creates a new LDAP directory searcher
func NewSearcher(cfg config.LDAPConfig, logger *zap.Logger) *Searcher {
	return &Searcher{
		cfg:    cfg,
		logger: logger,
	}
}

// Search dials the directory, executes one subtree-scoped search under the
// configured base DN and returns the raw matching entries
func (s *Searcher) Search(ctx context.Context, filter string) ([]*core.DirectoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := s.cfg.URL()
	opts := []ldap.DialOpt{
		// The directory's certificate chain is not verified when
		// InsecureSkipVerify is set; overridable via
		// ldap.insecure_skip_verify.
		ldap.DialWithTLSConfig(&tls.Config{InsecureSkipVerify: s.cfg.InsecureSkipVerify}),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, ldap.DialWithDialer(&net.Dialer{Timeout: s.cfg.Timeout}))
	}

	s.logger.Debug("Connecting to directory",
		zap.String("url", url),
		zap.Bool("insecure_skip_verify", s.cfg.InsecureSkipVerify))

	conn, err := ldap.DialURL(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory at %s: %w", url, err)
	}
	defer conn.Close()

	if s.cfg.BindDN != "" {
		if err := conn.Bind(s.cfg.BindDN, s.cfg.BindPassword); err != nil {
			return nil, fmt.Errorf("failed to bind as %s: %w", s.cfg.BindDN, err)
		}
	}

	req := ldap.NewSearchRequest(
		s.cfg.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		filter,
		searchAttributes,
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return nil, fmt.Errorf("directory search under %s failed: %w", s.cfg.BaseDN, err)
	}

	s.logger.Debug("Directory search returned entries", zap.Int("count", len(res.Entries)))

	return entriesFromResult(res), nil
}

// entriesFromResult converts go-ldap entries into the core representation
func entriesFromResult(res *ldap.SearchResult) []*core.DirectoryEntry {
	entries := make([]*core.DirectoryEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		attrs := make(map[string][]string, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs[a.Name] = a.Values
		}
		entries = append(entries, &core.DirectoryEntry{
			DN:         e.DN,
			Attributes: attrs,
		})
	}
	return entries
}
