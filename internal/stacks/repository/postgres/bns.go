package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

const namesPageSize = 100

// UpsertName supersedes the latest row of the name.
func (s *session) UpsertName(ctx context.Context, name model.BNSName) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("upsert_name", err, start)
	}()

	if _, err = s.exec(ctx, supersede("names", sq.Eq{"name": name.Name})); err != nil {
		return fmt.Errorf("supersede name %s: %w", name.Name, err)
	}
	_, err = s.exec(ctx, psql.Insert("names").
		Columns(nameColumns...).
		Values(
			name.Name,
			name.Address,
			name.Namespace,
			int64(name.RegisteredAt),
			int64(name.ExpireBlock),
			name.ZonefileHash,
			name.Zonefile,
			name.TxID,
			name.IndexBlockHash,
			name.Status,
			true,
			name.Canonical,
		))
	if err != nil {
		return fmt.Errorf("insert name %s: %w", name.Name, err)
	}
	return nil
}

// UpsertNamespace supersedes the latest row of the namespace.
func (s *session) UpsertNamespace(ctx context.Context, ns model.BNSNamespace) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("upsert_namespace", err, start)
	}()

	if _, err = s.exec(ctx, supersede("namespaces", sq.Eq{"namespace_id": ns.NamespaceID})); err != nil {
		return fmt.Errorf("supersede namespace %s: %w", ns.NamespaceID, err)
	}
	_, err = s.exec(ctx, psql.Insert("namespaces").
		Columns(namespaceColumns...).
		Values(
			ns.NamespaceID,
			ns.Address,
			int64(ns.LaunchedAt),
			int64(ns.RevealedAt),
			int64(ns.Lifetime),
			ns.Base,
			ns.Coeff,
			ns.NoVowelDiscount,
			ns.NonAlphaDiscount,
			ns.Buckets,
			ns.Status,
			ns.Ready,
			ns.TxID,
			ns.IndexBlockHash,
			true,
			ns.Canonical,
		))
	if err != nil {
		return fmt.Errorf("insert namespace %s: %w", ns.NamespaceID, err)
	}
	return nil
}

// UpsertSubdomains supersedes the latest row of each subdomain.
func (s *session) UpsertSubdomains(ctx context.Context, subdomains []model.BNSSubdomain) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("upsert_subdomains", err, start)
	}()

	for _, sub := range subdomains {
		if _, err = s.exec(ctx, supersede("subdomains", sq.Eq{"fully_qualified_name": sub.FullyQualifiedName})); err != nil {
			return fmt.Errorf("supersede subdomain %s: %w", sub.FullyQualifiedName, err)
		}
		_, err = s.exec(ctx, psql.Insert("subdomains").
			Columns(subdomainColumns...).
			Values(
				sub.Name,
				sub.NamespaceID,
				sub.FullyQualifiedName,
				sub.Owner,
				sub.ZonefileHash,
				sub.Zonefile,
				sub.ParentZonefileHash,
				int32(sub.ParentZonefileIndex),
				int64(sub.SequenceNumber),
				int64(sub.BlockHeight),
				sub.TxID,
				sub.IndexBlockHash,
				true,
				sub.Canonical,
			))
		if err != nil {
			return fmt.Errorf("insert subdomain %s: %w", sub.FullyQualifiedName, err)
		}
	}
	return nil
}

func supersede(table string, key sq.Eq) sq.UpdateBuilder {
	return psql.Update(table).Set("latest", false).Where(key).Where(sq.Eq{"latest": true})
}

var nameColumns = []string{
	"name",
	"address",
	"namespace_id",
	"registered_at",
	"expire_block",
	"zonefile_hash",
	"zonefile",
	"tx_id",
	"index_block_hash",
	"status",
	"latest",
	"canonical",
}

var namespaceColumns = []string{
	"namespace_id",
	"address",
	"launched_at",
	"revealed_at",
	"lifetime",
	"base",
	"coeff",
	"no_vowel_discount",
	"nonalpha_discount",
	"buckets",
	"status",
	"ready",
	"tx_id",
	"index_block_hash",
	"latest",
	"canonical",
}

var subdomainColumns = []string{
	"name",
	"namespace_id",
	"fully_qualified_name",
	"owner",
	"zonefile_hash",
	"zonefile",
	"parent_zonefile_hash",
	"parent_zonefile_index",
	"sequence_number",
	"block_height",
	"tx_id",
	"index_block_hash",
	"latest",
	"canonical",
}

func currentRow(table string, key sq.Eq, columns []string) sq.SelectBuilder {
	return psql.Select(columns...).
		From(table).
		Where(key).
		Where(sq.Eq{"latest": true, "canonical": true}).
		Limit(1)
}

// Namespaces lists the ids of current namespaces.
func (s *session) Namespaces(ctx context.Context) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("namespaces", err, start)
	}()

	rows, err := s.query(ctx,
		psql.Select("DISTINCT namespace_id").
			From("namespaces").
			Where(sq.Eq{"latest": true, "canonical": true}).
			OrderBy("namespace_id"),
	)
	if err != nil {
		return nil, fmt.Errorf("query namespaces: %w", err)
	}
	ids, err := scanStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("scan namespaces: %w", err)
	}
	return ids, nil
}

// NamespaceNames lists one page of current names in a namespace.
func (s *session) NamespaceNames(ctx context.Context, namespaceID string, page int) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("namespace_names", err, start)
	}()

	rows, err := s.query(ctx, paged(
		psql.Select("name").
			From("names").
			Where(sq.Eq{"namespace_id": namespaceID, "latest": true, "canonical": true}).
			OrderBy("name"),
		model.Page{Limit: namesPageSize, Offset: page * namesPageSize},
	))
	if err != nil {
		return nil, fmt.Errorf("query namespace names: %w", err)
	}
	names, err := scanStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("scan namespace names: %w", err)
	}
	return names, nil
}

// Namespace returns the current row of a namespace.
func (s *session) Namespace(ctx context.Context, namespaceID string) (model.BNSNamespace, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("namespace", err, start)
	}()

	var ns model.BNSNamespace
	found, err := s.queryRow(ctx, currentRow("namespaces", sq.Eq{"namespace_id": namespaceID}, namespaceColumns),
		&ns.NamespaceID,
		&ns.Address,
		&ns.LaunchedAt,
		&ns.RevealedAt,
		&ns.Lifetime,
		&ns.Base,
		&ns.Coeff,
		&ns.NoVowelDiscount,
		&ns.NonAlphaDiscount,
		&ns.Buckets,
		&ns.Status,
		&ns.Ready,
		&ns.TxID,
		&ns.IndexBlockHash,
		&ns.Latest,
		&ns.Canonical,
	)
	if err != nil {
		return model.BNSNamespace{}, false, fmt.Errorf("query namespace %s: %w", namespaceID, err)
	}
	return ns, found, nil
}

// Name returns the current row of a name.
func (s *session) Name(ctx context.Context, name string) (model.BNSName, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("name", err, start)
	}()

	var n model.BNSName
	found, err := s.queryRow(ctx, currentRow("names", sq.Eq{"name": name}, nameColumns),
		&n.Name,
		&n.Address,
		&n.Namespace,
		&n.RegisteredAt,
		&n.ExpireBlock,
		&n.ZonefileHash,
		&n.Zonefile,
		&n.TxID,
		&n.IndexBlockHash,
		&n.Status,
		&n.Latest,
		&n.Canonical,
	)
	if err != nil {
		return model.BNSName{}, false, fmt.Errorf("query name %s: %w", name, err)
	}
	return n, found, nil
}

// Subdomain returns the current row of a subdomain.
func (s *session) Subdomain(ctx context.Context, fullyQualifiedName string) (model.BNSSubdomain, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("subdomain", err, start)
	}()

	var sub model.BNSSubdomain
	found, err := s.queryRow(ctx, currentRow("subdomains", sq.Eq{"fully_qualified_name": fullyQualifiedName}, subdomainColumns),
		&sub.Name,
		&sub.NamespaceID,
		&sub.FullyQualifiedName,
		&sub.Owner,
		&sub.ZonefileHash,
		&sub.Zonefile,
		&sub.ParentZonefileHash,
		&sub.ParentZonefileIndex,
		&sub.SequenceNumber,
		&sub.BlockHeight,
		&sub.TxID,
		&sub.IndexBlockHash,
		&sub.Latest,
		&sub.Canonical,
	)
	if err != nil {
		return model.BNSSubdomain{}, false, fmt.Errorf("query subdomain %s: %w", fullyQualifiedName, err)
	}
	return sub, found, nil
}
