package main

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"presale/sdk"
)

// The sale token lives in its own fungible-asset contract. The engine only
// needs transfer, optional burn and a balance read; allowance handling stays
// on the token side where it belongs.

// tokenCallPayload builds the {"to":...,"amount":"..."} blob token contracts
// expect, amounts as decimal strings to dodge json number precision.
func tokenCallPayload(to string, amount int64) string {
	out := jwriter.Writer{}
	out.RawByte('{')
	if to != "" {
		out.RawString(`"to":`)
		out.String(to)
		out.RawByte(',')
	}
	out.RawString(`"amount":`)
	out.String(strconv.FormatInt(amount, 10))
	out.RawByte('}')
	buf, err := out.BuildBytes()
	if err != nil {
		sdk.Abort("token payload encoding failed")
	}
	return string(buf)
}

// tokenTransfer hands sale tokens from contract escrow to a recipient.
func tokenTransfer(cfg *SaleConfig, to sdk.Address, amount int64) {
	res := sdk.ContractCall(cfg.TokenContract, "transfer", tokenCallPayload(to.String(), amount), nil)
	if res == nil {
		sdk.Abort("token transfer failed")
	}
}

// tokenBurn destroys unsold supply held in escrow.
func tokenBurn(cfg *SaleConfig, amount int64) {
	res := sdk.ContractCall(cfg.TokenContract, "burn", tokenCallPayload("", amount), nil)
	if res == nil {
		sdk.Abort("token burn failed")
	}
}

// tokenBalanceOf reads a balance straight out of the token contract's state.
func tokenBalanceOf(cfg *SaleConfig, addr sdk.Address) int64 {
	ptr := sdk.ContractStateGet(cfg.TokenContract, "bal:"+addr.String())
	if ptr == nil || *ptr == "" {
		return 0
	}
	bal, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("token balance unreadable")
	}
	return bal
}
