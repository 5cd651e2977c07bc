package bns

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/codec"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

// Contract functions whose print events carry BNS rows.
const (
	FunctionNameImport     = "name-import"
	FunctionNamespaceReady = "namespace-ready"
)

// nameImport is the payload printed by name-import.
type nameImport struct {
	Name         string
	Namespace    string
	Owner        string
	ZonefileHash string
}

func parseNameImport(value []byte) (nameImport, error) {
	cv, err := codec.DecodeClarityValue(value)
	if err != nil {
		return nameImport{}, fmt.Errorf("decode name-import value: %w", err)
	}

	attachment, err := field(cv, "attachment")
	if err != nil {
		return nameImport{}, err
	}
	hash, err := field(attachment, "hash")
	if err != nil {
		return nameImport{}, err
	}
	metadata, err := field(attachment, "metadata")
	if err != nil {
		return nameImport{}, err
	}
	name, err := field(metadata, "name")
	if err != nil {
		return nameImport{}, err
	}
	namespace, err := field(metadata, "namespace")
	if err != nil {
		return nameImport{}, err
	}
	sender, err := field(metadata, "tx-sender")
	if err != nil {
		return nameImport{}, err
	}

	return nameImport{
		Name:         string(name.Buffer) + "." + string(namespace.Buffer),
		Namespace:    string(namespace.Buffer),
		Owner:        sender.Principal,
		ZonefileHash: hex.EncodeToString(hash.Buffer),
	}, nil
}

func parseNamespaceReady(value []byte) (model.BNSNamespace, error) {
	cv, err := codec.DecodeClarityValue(value)
	if err != nil {
		return model.BNSNamespace{}, fmt.Errorf("decode namespace-ready value: %w", err)
	}

	namespace, err := field(cv, "namespace")
	if err != nil {
		return model.BNSNamespace{}, err
	}
	status, err := field(cv, "status")
	if err != nil {
		return model.BNSNamespace{}, err
	}
	props, err := field(cv, "properties")
	if err != nil {
		return model.BNSNamespace{}, err
	}
	importer, err := field(props, "namespace-import")
	if err != nil {
		return model.BNSNamespace{}, err
	}
	lifetime, err := uintField(props, "lifetime")
	if err != nil {
		return model.BNSNamespace{}, err
	}
	revealedAt, err := uintField(props, "revealed-at")
	if err != nil {
		return model.BNSNamespace{}, err
	}

	var launchedAt uint64
	if launched, err := field(props, "launched-at"); err == nil && launched.Type == codec.ClarityOptionalSome {
		if launchedAt, err = launched.Inner.Uint64(); err != nil {
			return model.BNSNamespace{}, fmt.Errorf("launched-at: %w", err)
		}
	}

	price, err := field(props, "price-function")
	if err != nil {
		return model.BNSNamespace{}, err
	}
	ns := model.BNSNamespace{
		NamespaceID: string(namespace.Buffer),
		Address:     importer.Principal,
		LaunchedAt:  launchedAt,
		RevealedAt:  revealedAt,
		Lifetime:    lifetime,
		Status:      status.String(),
		Ready:       true,
	}
	for name, dst := range map[string]*decimal.Decimal{
		"base":              &ns.Base,
		"coeff":             &ns.Coeff,
		"no-vowel-discount": &ns.NoVowelDiscount,
		"nonalpha-discount": &ns.NonAlphaDiscount,
	} {
		v, err := field(price, name)
		if err != nil {
			return model.BNSNamespace{}, err
		}
		if v.Int == nil {
			return model.BNSNamespace{}, fmt.Errorf("%s is %s, not an integer", name, v.TypeName())
		}
		*dst = decimal.NewFromBigInt(v.Int, 0)
	}

	buckets, err := field(price, "buckets")
	if err != nil {
		return model.BNSNamespace{}, err
	}
	parts := make([]string, 0, len(buckets.List))
	for _, b := range buckets.List {
		n, err := b.Uint64()
		if err != nil {
			return model.BNSNamespace{}, fmt.Errorf("bucket: %w", err)
		}
		parts = append(parts, strconv.FormatUint(n, 10))
	}
	ns.Buckets = strings.Join(parts, ",")
	return ns, nil
}

func field(v *codec.ClarityValue, name string) (*codec.ClarityValue, error) {
	f, ok := v.Field(name)
	if !ok {
		return nil, fmt.Errorf("missing tuple field %q", name)
	}
	return f, nil
}

func uintField(v *codec.ClarityValue, name string) (uint64, error) {
	f, err := field(v, name)
	if err != nil {
		return 0, err
	}
	n, err := f.Uint64()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
