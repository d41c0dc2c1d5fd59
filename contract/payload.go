package main

import (
	"strconv"
	"strings"

	"github.com/CosmWasm/tinyjson/jlexer"

	"presale/sdk"
)

// Payloads arrive as raw JSON strings. They are decoded with the tinyjson
// lexer instead of reflection so the wasm build stays small and deterministic.

// payloadLexer aborts on a missing payload and wraps the rest into a lexer.
func payloadLexer(payload *string, what string) *jlexer.Lexer {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		sdk.Abort(what + " payload missing")
	}
	return &jlexer.Lexer{Data: []byte(*payload)}
}

// finishPayload aborts when the lexer tripped over malformed JSON.
func finishPayload(in *jlexer.Lexer, what string) {
	in.Consumed()
	if in.Error() != nil {
		sdk.Abort("invalid " + what + " payload")
	}
}

// decodeString unwraps a bare JSON string payload (like "hive:bob").
func decodeString(payload *string, what string) string {
	in := payloadLexer(payload, what)
	v := in.String()
	finishPayload(in, what)
	return v
}

// decodeUint unwraps a bare JSON number payload used for ids.
func decodeUint(payload *string, what string) uint64 {
	in := payloadLexer(payload, what)
	v := in.Uint64()
	finishPayload(in, what)
	return v
}

// decodeInt unwraps a bare JSON number payload used for caps and splits.
func decodeInt(payload *string, what string) int64 {
	in := payloadLexer(payload, what)
	v := in.Int64()
	finishPayload(in, what)
	return v
}

// decodeBool unwraps a bare JSON bool payload.
func decodeBool(payload *string, what string) bool {
	in := payloadLexer(payload, what)
	v := in.Bool()
	finishPayload(in, what)
	return v
}

// decodeInitArgs unpacks the full construction payload for contract_init.
func decodeInitArgs(payload *string) *InitArgs {
	in := payloadLexer(payload, "init")
	args := &InitArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "tokenContract":
			args.TokenContract = in.String()
		case "tokenDecimals":
			args.TokenDecimals = in.Uint8()
		case "start":
			args.StartAt = in.Int64()
		case "end":
			args.EndAt = in.Int64()
		case "rateStable":
			args.RateStable = in.Int64()
		case "rateNative":
			args.RateNative = in.Int64()
		case "hardCap":
			args.HardCap = in.Int64()
		case "buyerMax":
			args.BuyerMax = in.Int64()
		case "expectedTotal":
			args.ExpectedTotal = in.Int64()
		case "toleranceBps":
			args.ToleranceBps = in.Int64()
		case "adminUnlockAt":
			args.AdminUnlockAt = in.Int64()
		case "kycRequired":
			args.KycRequired = in.Bool()
		case "burnUnsold":
			args.BurnUnsold = in.Bool()
		case "unsoldRecipient":
			args.UnsoldRecipient = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "init")
	return args
}

// decodeBuyArgs expects {"amount": 12.5} in whole payment-asset units.
func decodeBuyArgs(payload *string) *BuyArgs {
	in := payloadLexer(payload, "buy")
	args := &BuyArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "amount":
			// The tinygo-targeted lexer carries no float accessor, so the
			// amount is parsed off the raw token.
			v, err := strconv.ParseFloat(string(in.Raw()), 64)
			if err != nil {
				sdk.Abort("invalid buy payload")
			}
			args.Amount = v
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "buy")
	return args
}

func decodeSetTimesArgs(payload *string) *SetTimesArgs {
	in := payloadLexer(payload, "times")
	args := &SetTimesArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "start":
			args.StartAt = in.Int64()
		case "end":
			args.EndAt = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "times")
	return args
}

func decodeSetRatesArgs(payload *string) *SetRatesArgs {
	in := payloadLexer(payload, "rates")
	args := &SetRatesArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "rateStable":
			args.RateStable = in.Int64()
		case "rateNative":
			args.RateNative = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "rates")
	return args
}

func decodeSetVaultsArgs(payload *string) *SetVaultsArgs {
	in := payloadLexer(payload, "vaults")
	args := &SetVaultsArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "reserve":
			args.Reserve = in.String()
		case "ops":
			args.Ops = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "vaults")
	return args
}

func decodeSetKycArgs(payload *string) *SetKycArgs {
	in := payloadLexer(payload, "kyc")
	args := &SetKycArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "account":
			args.Account = in.String()
		case "passed":
			args.Passed = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "kyc")
	return args
}

func decodeSetUnsoldPolicyArgs(payload *string) *SetUnsoldPolicyArgs {
	in := payloadLexer(payload, "unsold policy")
	args := &SetUnsoldPolicyArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "burn":
			args.Burn = in.Bool()
		case "recipient":
			args.Recipient = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "unsold policy")
	return args
}

func decodeSetExpectationArgs(payload *string) *SetExpectationArgs {
	in := payloadLexer(payload, "expectation")
	args := &SetExpectationArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "expectedTotal":
			args.ExpectedTotal = in.Int64()
		case "toleranceBps":
			args.ToleranceBps = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "expectation")
	return args
}

// decodeFinalizeArgs tolerates a missing payload since the override recipient
// is optional.
func decodeFinalizeArgs(payload *string) *FinalizeArgs {
	args := &FinalizeArgs{}
	if payload == nil || strings.TrimSpace(*payload) == "" {
		return args
	}
	in := &jlexer.Lexer{Data: []byte(*payload)}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "unsoldRecipient":
			args.UnsoldRecipient = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "finalize")
	return args
}

func decodePromiseStatusArgs(payload *string) *PromiseStatusArgs {
	in := payloadLexer(payload, "promise status")
	args := &PromiseStatusArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			args.ID = in.Uint64()
		case "status":
			args.Status = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishPayload(in, "promise status")
	return args
}

// Convenience helper
func strptr(s string) *string { return &s }
