package postgres

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/chain"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

func (s *RepositorySuite) TestChainTipEmpty() {
	s.metrics.EXPECT().Observe("chain_tip", gomock.Nil(), gomock.Any()).Times(1)

	ws, err := s.repo.BeginWrite(s.testCtx)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(ws.Rollback())
	}()

	_, found, err := ws.ChainTip(s.testCtx)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositorySuite) TestForkWin() {
	s.anyObserve()

	s.mustApply(block("a1", "a0", 1))
	s.mustApply(block("a2", "a1", 2, transfer("0xtx-a", alice, bob, 5, 1)))
	s.mempool("0xtx-b")

	res := s.mustApply(block("b2", "a1", 2, transfer("0xtx-b", alice, bob, 7, 1)))
	s.False(res.Canonical)
	s.Nil(res.Reorg)

	s.mempool("0xtx-a")
	res = s.mustApply(block("c3", "b2", 3))
	s.True(res.Canonical)
	s.Require().NotNil(res.Reorg)
	s.Equal(1, res.Reorg.Depth())
	s.Equal([]string{"0xtx-b"}, res.Pruned)
	s.Equal([]string{"0xtx-a"}, res.Restored)
	s.Equal(1, res.Reorg.Entities.MarkedNonCanonical.Blocks)
	s.Equal(2, res.Reorg.Entities.MarkedNonCanonical.Txs)
	s.Equal(1, res.Reorg.Entities.MarkedNonCanonical.StxEvents)

	r := s.read()
	at2, found, err := r.BlockByHeight(s.testCtx, 2)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("b2", at2.IndexBlockHash)

	txA, found, err := r.TxByID(s.testCtx, "0xtx-a")
	s.Require().NoError(err)
	s.Require().True(found)
	s.False(txA.Canonical)
	s.Equal(uint64(5), txA.TokenTransfer.Amount)

	events, err := r.TxEvents(s.testCtx, "0xtx-a", "a2")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.False(events[0].Base().Canonical)

	_, found, err = r.MempoolTx(s.testCtx, "0xtx-a")
	s.Require().NoError(err)
	s.True(found)
	_, found, err = r.MempoolTx(s.testCtx, "0xtx-b")
	s.Require().NoError(err)
	s.False(found)

	tip, found, err := r.CurrentBlock(s.testCtx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("c3", tip.IndexBlockHash)
	s.Equal(uint64(603), tip.BurnBlockHeight)
}

func (s *RepositorySuite) TestDeepReorgAndBack() {
	s.anyObserve()

	s.mustApply(block("a1", "a0", 1))
	s.mustApply(block("a2", "a1", 2))
	s.mustApply(block("a3", "a2", 3))
	s.mustApply(block("b2", "a1", 2))
	s.mustApply(block("b3", "b2", 3))

	res := s.mustApply(block("b4", "b3", 4))
	s.Require().NotNil(res.Reorg)
	s.Equal(2, res.Reorg.Depth())

	s.mustApply(block("a4", "a3", 4))
	res = s.mustApply(block("a5", "a4", 5))
	s.Require().NotNil(res.Reorg)
	s.Equal(3, res.Reorg.Depth())

	r := s.read()
	for height, want := range map[uint64]string{1: "a1", 2: "a2", 3: "a3", 4: "a4", 5: "a5"} {
		b, found, err := r.BlockByHeight(s.testCtx, height)
		s.Require().NoError(err)
		s.Require().True(found)
		s.Equal(want, b.IndexBlockHash)
	}

	blocks, total, err := r.BlockList(s.testCtx, model.Page{Limit: 2, Offset: 1})
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(blocks, 2)
	s.Equal("a4", blocks[0].IndexBlockHash)
	s.Equal("a3", blocks[1].IndexBlockHash)
}

func (s *RepositorySuite) TestMissingParentRollsBack() {
	s.anyObserve()

	s.mustApply(block("a1", "a0", 1))
	_, err := s.apply(block("x3", "x2", 3))
	s.True(model.IsChainConsistencyError(err))

	r := s.read()
	_, found, err := r.BlockByHash(s.testCtx, "x3")
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositorySuite) TestReplayIsIdempotent() {
	s.anyObserve()

	s.mustApply(block("a1", "a0", 1, mint("0xmint", alice, 1000)))
	s.mustApply(block("a2", "a1", 2, transfer("0xsend", alice, bob, 300, 10)))
	res := s.mustApply(block("a2", "a1", 2, transfer("0xsend", alice, bob, 300, 10)))
	s.False(res.Inserted)

	r := s.read()
	txs, total, err := r.TxList(s.testCtx, model.TxFilter{}, model.Page{Limit: 50})
	s.Require().NoError(err)
	s.Equal(4, total)
	s.Len(txs, 4)

	transfers, total, err := r.TxList(s.testCtx, model.TxFilter{Types: []model.TxType{model.TxTypeTokenTransfer}}, model.Page{Limit: 50})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Equal("0xsend", transfers[0].TxID)

	tip, _, err := r.CurrentBlock(s.testCtx)
	s.Require().NoError(err)
	balance, err := chain.StxBalanceAt(s.testCtx, r, alice, tip)
	s.Require().NoError(err)
	s.Equal("690", balance.Balance.String())
	s.Equal("10", balance.TotalFeesSent.String())
}

func (s *RepositorySuite) TestSponsoredFeesChargedToSender() {
	s.anyObserve()

	sponsored := transfer("0xsponsored", alice, bob, 5, 40)
	sponsored.Tx.Sponsored = true
	sponsored.Tx.SponsorAddress = bob
	s.mustApply(block("a1", "a0", 1, sponsored))

	r := s.read()
	aliceFees, err := r.FeesPaid(s.testCtx, alice, 1)
	s.Require().NoError(err)
	s.Equal("40", aliceFees.String())

	bobFees, err := r.FeesPaid(s.testCtx, bob, 1)
	s.Require().NoError(err)
	s.Equal("0", bobFees.String())
}
