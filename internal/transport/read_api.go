package transport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// ReadAPI serves indexed chain data as JSON.
type ReadAPI struct {
	reader Reader
	logger *zap.Logger
	mux    *http.ServeMux
}

func NewReadAPI(reader Reader, logger *zap.Logger) *ReadAPI {
	a := &ReadAPI{
		reader: reader,
		logger: logger.Named("read_api"),
		mux:    http.NewServeMux(),
	}

	a.mux.HandleFunc("GET /extended/v1/status", a.status)
	a.mux.HandleFunc("GET /extended/v1/block", a.blocks)
	a.mux.HandleFunc("GET /extended/v1/block/{hash}", a.block)
	a.mux.HandleFunc("GET /extended/v1/block/by_height/{height}", a.blockByHeight)
	a.mux.HandleFunc("GET /extended/v1/tx", a.txList)
	a.mux.HandleFunc("GET /extended/v1/tx/mempool", a.mempoolTxList)
	a.mux.HandleFunc("GET /extended/v1/tx/{txid}", a.tx)
	a.mux.HandleFunc("GET /extended/v1/tx/{txid}/events", a.txEvents)
	a.mux.HandleFunc("GET /extended/v1/address/{principal}/stx", a.stxBalance)
	a.mux.HandleFunc("GET /extended/v1/address/{principal}/balances", a.balances)
	a.mux.HandleFunc("GET /extended/v1/address/{principal}/transactions", a.addressTxs)
	a.mux.HandleFunc("GET /extended/v1/address/{principal}/assets", a.addressAssets)
	a.mux.HandleFunc("GET /extended/v1/contract/{contract_id}", a.contract)
	a.mux.HandleFunc("GET /extended/v1/contract/{contract_id}/events", a.contractEvents)
	a.mux.HandleFunc("GET /extended/v1/burnchain/rewards/{recipient}", a.burnchainRewards)
	a.mux.HandleFunc("GET /extended/v1/burnchain/rewards/{recipient}/total", a.burnchainRewardTotal)
	a.mux.HandleFunc("GET /extended/v1/search/{term}", a.search)
	a.mux.HandleFunc("GET /v1/namespaces", a.namespaces)
	a.mux.HandleFunc("GET /v1/namespaces/{namespace}", a.namespace)
	a.mux.HandleFunc("GET /v1/namespaces/{namespace}/names", a.namespaceNames)
	a.mux.HandleFunc("GET /v1/names/{name}", a.name)
	return a
}

// Handler returns the API wrapped with permissive CORS.
func (a *ReadAPI) Handler() http.Handler {
	return cors.Default().Handler(a.mux)
}

func (a *ReadAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *ReadAPI) fail(w http.ResponseWriter, err error) {
	writeError(w, a.logger, err)
}

func (a *ReadAPI) status(w http.ResponseWriter, r *http.Request) {
	block, found, err := a.reader.CurrentBlock(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	resp := map[string]any{"status": "ready"}
	if found {
		resp["chain_tip"] = newBlockDTO(block)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *ReadAPI) blocks(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	blocks, total, err := a.reader.Blocks(r.Context(), page)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := make([]blockDTO, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, newBlockDTO(b))
	}
	writeJSON(w, http.StatusOK, pageDTO[blockDTO]{Limit: page.Limit, Offset: page.Offset, Total: total, Results: out})
}

func (a *ReadAPI) block(w http.ResponseWriter, r *http.Request) {
	a.writeBlock(w, r, func(ctx context.Context) (model.Block, bool, error) {
		return a.reader.Block(ctx, r.PathValue("hash"))
	})
}

func (a *ReadAPI) blockByHeight(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(r.PathValue("height"), 10, 64)
	if err != nil {
		a.fail(w, fmt.Errorf("%w: invalid height", errBadRequest))
		return
	}
	a.writeBlock(w, r, func(ctx context.Context) (model.Block, bool, error) {
		return a.reader.BlockByHeight(ctx, height)
	})
}

func (a *ReadAPI) writeBlock(w http.ResponseWriter, r *http.Request, load func(context.Context) (model.Block, bool, error)) {
	block, found, err := load(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("block: %w", model.ErrNotFound))
		return
	}
	txs, err := a.reader.BlockTxs(r.Context(), block.IndexBlockHash)
	if err != nil {
		a.fail(w, err)
		return
	}
	if txs == nil {
		txs = []string{}
	}
	writeJSON(w, http.StatusOK, struct {
		blockDTO
		Txs []string `json:"txs"`
	}{newBlockDTO(block), txs})
}

func (a *ReadAPI) txList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	var filter model.TxFilter
	for _, raw := range r.URL.Query()["type"] {
		for _, name := range strings.Split(raw, ",") {
			t, ok := model.ParseTxType(name)
			if !ok {
				a.fail(w, fmt.Errorf("%w: unknown tx type %q", errBadRequest, name))
				return
			}
			filter.Types = append(filter.Types, t)
		}
	}
	txs, total, err := a.reader.TxList(r.Context(), filter, page)
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageDTO[txDTO]{Limit: page.Limit, Offset: page.Offset, Total: total, Results: newTxDTOs(txs)})
}

func (a *ReadAPI) mempoolTxList(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	txs, total, err := a.reader.MempoolTxList(r.Context(), page)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := make([]txDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, newMempoolTxDTO(t))
	}
	writeJSON(w, http.StatusOK, pageDTO[txDTO]{Limit: page.Limit, Offset: page.Offset, Total: total, Results: out})
}

// tx falls back to the mempool when the id is not mined.
func (a *ReadAPI) tx(w http.ResponseWriter, r *http.Request) {
	txID := r.PathValue("txid")
	tx, found, err := a.reader.Tx(r.Context(), txID)
	if err != nil {
		a.fail(w, err)
		return
	}
	if found {
		writeJSON(w, http.StatusOK, newTxDTO(tx))
		return
	}
	mtx, found, err := a.reader.MempoolTx(r.Context(), txID)
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("transaction %s: %w", txID, model.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newMempoolTxDTO(mtx))
}

func (a *ReadAPI) txEvents(w http.ResponseWriter, r *http.Request) {
	txID := r.PathValue("txid")
	tx, found, err := a.reader.Tx(r.Context(), txID)
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("transaction %s: %w", txID, model.ErrNotFound))
		return
	}
	events, err := a.reader.TxEvents(r.Context(), txID, tx.IndexBlockHash)
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": newEventDTOs(events)})
}

func (a *ReadAPI) stxBalance(w http.ResponseWriter, r *http.Request) {
	principal := r.PathValue("principal")
	raw := r.URL.Query().Get("until_block")
	if raw == "" {
		balance, err := a.reader.StxBalance(r.Context(), principal)
		if err != nil {
			a.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newStxBalanceDTO(balance))
		return
	}

	height, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		a.fail(w, fmt.Errorf("%w: invalid until_block", errBadRequest))
		return
	}
	balance, found, err := a.reader.StxBalanceAtBlock(r.Context(), principal, height)
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("block at height %d: %w", height, model.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newStxBalanceDTO(balance))
}

func (a *ReadAPI) balances(w http.ResponseWriter, r *http.Request) {
	principal := r.PathValue("principal")
	stx, err := a.reader.StxBalance(r.Context(), principal)
	if err != nil {
		a.fail(w, err)
		return
	}
	fts, err := a.reader.FungibleTokenBalances(r.Context(), principal)
	if err != nil {
		a.fail(w, err)
		return
	}
	nfts, err := a.reader.NonFungibleTokenCounts(r.Context(), principal)
	if err != nil {
		a.fail(w, err)
		return
	}

	resp := balancesDTO{
		Stx:            newStxBalanceDTO(stx),
		FungibleTokens: make(map[string]ftBalanceDTO, len(fts)),
		NonFungible:    make(map[string]nftCountDTO, len(nfts)),
	}
	for _, ft := range fts {
		resp.FungibleTokens[ft.AssetIdentifier] = ftBalanceDTO{Balance: ft.Balance, TotalSent: ft.TotalSent, TotalReceived: ft.TotalReceived}
	}
	for _, nft := range nfts {
		resp.NonFungible[nft.AssetIdentifier] = nftCountDTO{Count: nft.Count, TotalSent: nft.TotalSent, TotalReceived: nft.TotalReceived}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *ReadAPI) addressTxs(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	txs, total, err := a.reader.AddressTxs(r.Context(), r.PathValue("principal"), page)
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageDTO[txDTO]{Limit: page.Limit, Offset: page.Offset, Total: total, Results: newTxDTOs(txs)})
}

func (a *ReadAPI) addressAssets(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	events, err := a.reader.AddressAssetEvents(r.Context(), r.PathValue("principal"), page)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := newEventDTOs(events)
	writeJSON(w, http.StatusOK, pageDTO[eventDTO]{Limit: page.Limit, Offset: page.Offset, Total: len(out), Results: out})
}

func (a *ReadAPI) contract(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("contract_id")
	c, found, err := a.reader.SmartContract(r.Context(), id)
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("contract %s: %w", id, model.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, contractDTO{
		TxID:        c.TxID,
		ContractID:  c.ContractID,
		BlockHeight: c.BlockHeight,
		SourceCode:  c.SourceCode,
		ABI:         c.ABI,
		Canonical:   c.Canonical,
	})
}

func (a *ReadAPI) contractEvents(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	logs, err := a.reader.SmartContractEvents(r.Context(), r.PathValue("contract_id"), page)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := make([]eventDTO, 0, len(logs))
	for i := range logs {
		out = append(out, newEventDTO(&logs[i]))
	}
	writeJSON(w, http.StatusOK, pageDTO[eventDTO]{Limit: page.Limit, Offset: page.Offset, Total: len(out), Results: out})
}

func (a *ReadAPI) burnchainRewards(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	rewards, err := a.reader.BurnchainRewards(r.Context(), r.PathValue("recipient"), page)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := make([]burnchainRewardDTO, 0, len(rewards))
	for _, rw := range rewards {
		out = append(out, burnchainRewardDTO{
			BurnBlockHash:   rw.BurnBlockHash,
			BurnBlockHeight: rw.BurnBlockHeight,
			BurnAmount:      rw.BurnAmount,
			RewardRecipient: rw.RewardRecipient,
			RewardAmount:    rw.RewardAmount,
			RewardIndex:     rw.RewardIndex,
			Canonical:       rw.Canonical,
		})
	}
	writeJSON(w, http.StatusOK, pageDTO[burnchainRewardDTO]{Limit: page.Limit, Offset: page.Offset, Total: len(out), Results: out})
}

func (a *ReadAPI) burnchainRewardTotal(w http.ResponseWriter, r *http.Request) {
	recipient := r.PathValue("recipient")
	total, err := a.reader.BurnchainRewardTotal(r.Context(), recipient)
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reward_recipient": recipient, "reward_amount": total})
}

func (a *ReadAPI) search(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")
	result, found, err := a.reader.Search(r.Context(), term)
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("search %s: %w", term, model.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"found": true, "result": newSearchDTO(result)})
}

func (a *ReadAPI) namespaces(w http.ResponseWriter, r *http.Request) {
	ids, err := a.reader.Namespaces(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"namespaces": ids})
}

func (a *ReadAPI) namespace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("namespace")
	ns, found, err := a.reader.Namespace(r.Context(), id)
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("namespace %s: %w", id, model.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, namespaceDTO{
		NamespaceID:      ns.NamespaceID,
		Address:          ns.Address,
		LaunchedAt:       ns.LaunchedAt,
		RevealedAt:       ns.RevealedAt,
		Lifetime:         ns.Lifetime,
		Base:             ns.Base,
		Coeff:            ns.Coeff,
		NoVowelDiscount:  ns.NoVowelDiscount,
		NonAlphaDiscount: ns.NonAlphaDiscount,
		Buckets:          ns.Buckets,
		Status:           ns.Status,
		Ready:            ns.Ready,
	})
}

func (a *ReadAPI) namespaceNames(w http.ResponseWriter, r *http.Request) {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 {
			a.fail(w, fmt.Errorf("%w: invalid page", errBadRequest))
			return
		}
		page = p
	}
	names, err := a.reader.NamespaceNames(r.Context(), r.PathValue("namespace"), page)
	if err != nil {
		a.fail(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

// name resolves a name or, for three-label names, a subdomain.
func (a *ReadAPI) name(w http.ResponseWriter, r *http.Request) {
	fqn := r.PathValue("name")
	if strings.Count(fqn, ".") >= 2 {
		sub, found, err := a.reader.Subdomain(r.Context(), fqn)
		if err != nil {
			a.fail(w, err)
			return
		}
		if !found {
			a.fail(w, fmt.Errorf("name %s: %w", fqn, model.ErrNotFound))
			return
		}
		writeJSON(w, http.StatusOK, nameDTO{
			Address:      sub.Owner,
			Blockchain:   "stacks",
			LastTxID:     sub.TxID,
			Status:       "registered_subdomain",
			Zonefile:     sub.Zonefile,
			ZonefileHash: sub.ZonefileHash,
		})
		return
	}

	n, found, err := a.reader.Name(r.Context(), fqn)
	if err != nil {
		a.fail(w, err)
		return
	}
	if !found {
		a.fail(w, fmt.Errorf("name %s: %w", fqn, model.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, nameDTO{
		Address:      n.Address,
		Blockchain:   "stacks",
		ExpireBlock:  n.ExpireBlock,
		LastTxID:     n.TxID,
		Status:       n.Status,
		Zonefile:     n.Zonefile,
		ZonefileHash: n.ZonefileHash,
	})
}

func parsePage(r *http.Request) (model.Page, error) {
	page := model.Page{Limit: defaultLimit}
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxLimit {
			return page, fmt.Errorf("%w: limit must be between 1 and %d", errBadRequest, maxLimit)
		}
		page.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return page, fmt.Errorf("%w: invalid offset", errBadRequest)
		}
		page.Offset = offset
	}
	return page, nil
}
