package bns

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// ZonefileHash returns the hex hash160 of a zonefile.
func ZonefileHash(zonefile []byte) string {
	return hex.EncodeToString(btcutil.Hash160(zonefile))
}

// ParseSubdomains extracts the subdomain TXT records of a name's zonefile.
// Records that are not subdomain records are skipped; malformed subdomain
// records fail the whole zonefile.
func ParseSubdomains(zonefile string, name model.BNSName) ([]model.BNSSubdomain, error) {
	var subdomains []model.BNSSubdomain
	for lineNo, line := range strings.Split(zonefile, "\n") {
		tokens, err := tokenize(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		if len(tokens) < 3 || strings.HasPrefix(tokens[0].text, "$") {
			continue
		}

		txt := -1
		for i, tok := range tokens[1:] {
			if !tok.quoted && strings.EqualFold(tok.text, "TXT") {
				txt = i + 1
				break
			}
		}
		if txt < 0 {
			continue
		}

		fields := make(map[string]string)
		for _, tok := range tokens[txt+1:] {
			if k, v, ok := strings.Cut(tok.text, "="); ok {
				fields[k] = v
			}
		}
		if _, ok := fields["owner"]; !ok {
			continue
		}

		sub, err := subdomainRecord(tokens[0].text, fields, name)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		sub.ParentZonefileIndex = uint32(len(subdomains))
		subdomains = append(subdomains, sub)
	}
	return subdomains, nil
}

func subdomainRecord(label string, fields map[string]string, name model.BNSName) (model.BNSSubdomain, error) {
	parts, err := strconv.Atoi(fields["parts"])
	if err != nil || parts < 0 {
		return model.BNSSubdomain{}, fmt.Errorf("subdomain %s: invalid parts %q", label, fields["parts"])
	}
	var seqn uint64
	if s, ok := fields["seqn"]; ok {
		if seqn, err = strconv.ParseUint(s, 10, 64); err != nil {
			return model.BNSSubdomain{}, fmt.Errorf("subdomain %s: invalid seqn %q", label, s)
		}
	}

	keys := make([]string, 0, parts)
	for i := 0; i < parts; i++ {
		key := "zf" + strconv.Itoa(i)
		if _, ok := fields[key]; !ok {
			return model.BNSSubdomain{}, fmt.Errorf("subdomain %s: missing %s", label, key)
		}
		keys = append(keys, key)
	}

	var encoded strings.Builder
	for _, k := range keys {
		encoded.WriteString(fields[k])
	}
	zonefile, err := base64.StdEncoding.DecodeString(encoded.String())
	if err != nil {
		return model.BNSSubdomain{}, fmt.Errorf("subdomain %s: decode zonefile: %w", label, err)
	}

	return model.BNSSubdomain{
		Name:               name.Name,
		NamespaceID:        name.Namespace,
		FullyQualifiedName: label + "." + name.Name,
		Owner:              fields["owner"],
		ZonefileHash:       ZonefileHash(zonefile),
		Zonefile:           string(zonefile),
		ParentZonefileHash: name.ZonefileHash,
		SequenceNumber:     seqn,
		BlockHeight:        name.RegisteredAt,
		TxID:               name.TxID,
		IndexBlockHash:     name.IndexBlockHash,
		Canonical:          name.Canonical,
	}, nil
}

type token struct {
	text   string
	quoted bool
}

func tokenize(line string) ([]token, error) {
	var (
		tokens []token
		cur    strings.Builder
		quoted bool
		inTok  bool
	)
	flush := func(wasQuoted bool) {
		tokens = append(tokens, token{text: cur.String(), quoted: wasQuoted})
		cur.Reset()
		inTok = false
	}
scan:
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted && c == '\\' && i+1 < len(line):
			i++
			cur.WriteByte(line[i])
		case quoted && c == '"':
			quoted = false
			flush(true)
		case quoted:
			cur.WriteByte(c)
		case c == '"':
			if inTok {
				flush(false)
			}
			quoted = true
		case c == ';':
			break scan
		case c == ' ' || c == '\t' || c == '\r':
			if inTok {
				flush(false)
			}
		default:
			inTok = true
			cur.WriteByte(c)
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inTok {
		flush(false)
	}
	return tokens, nil
}
