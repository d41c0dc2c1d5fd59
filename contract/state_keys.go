package main

import "presale/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// singletonKey wraps the one-byte prefixes used by the fixed config blobs.
func singletonKey(prefix byte) string {
	return string([]byte{prefix})
}

// saleConfigKey addresses the single sale configuration blob.
func saleConfigKey() string { return singletonKey(kSaleConfig) }

// capsKey sits next to the config so cap updates touch one small record.
func capsKey() string { return singletonKey(kCaps) }

// vaultsKey stores payout destinations plus the cool-down stamp.
func vaultsKey() string { return singletonKey(kVaults) }

// expectationKey stores the finalization proceeds guard.
func expectationKey() string { return singletonKey(kExpectation) }

// saleStateKey addresses the running totals record.
func saleStateKey() string { return singletonKey(kSaleState) }

// unsoldPolicyKey stores the leftover-supply disposal policy.
func unsoldPolicyKey() string { return singletonKey(kUnsoldPolicy) }

// governanceKey stores the succession state machine.
func governanceKey() string { return singletonKey(kGovernance) }

// contributionKey mixes the prefix with raw address bytes to avoid nested maps in host storage.
func contributionKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kContribution)
	buf = append(buf, addrStr...)
	return string(buf)
}

// kycKey mirrors contribution keys but keeps eligibility flags in a separate prefix.
func kycKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kKyc)
	buf = append(buf, addrStr...)
	return string(buf)
}

// promiseKey encodes the entry id under the 0x20 prefix keeping the log contiguous.
func promiseKey(id uint64) string {
	var buf [9]byte
	buf[0] = kPromise
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
