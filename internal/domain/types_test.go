package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakegate/ledgersync/internal/domain"
)

const testPolicyID = "d5e6bf0500378d4f0da4e8dde6becec7621cd8cbf5cbb9b87013d4cc"

func TestAssetID_Valid(t *testing.T) {
	tests := []struct {
		name    string
		assetID domain.AssetID
		want    bool
	}{
		{
			name:    "policy ID with hex name",
			assetID: domain.NewAssetID(testPolicyID, "537061636542756433343132"),
			want:    true,
		},
		{
			name:    "bare policy ID",
			assetID: domain.AssetID(testPolicyID),
			want:    true,
		},
		{
			name:    "too short",
			assetID: domain.AssetID("d5e6bf05"),
			want:    false,
		},
		{
			name:    "uppercase hex rejected",
			assetID: domain.AssetID(strings.ToUpper(testPolicyID)),
			want:    false,
		},
		{
			name:    "non-hex asset name",
			assetID: domain.NewAssetID(testPolicyID, "SpaceBud"),
			want:    false,
		},
		{
			name:    "empty",
			assetID: domain.AssetID(""),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.assetID.Valid())
		})
	}
}

func TestAssetID_Parse(t *testing.T) {
	assetID := domain.NewAssetID(testPolicyID, "4d794e4654")

	policyID, assetName := assetID.Parse()
	assert.Equal(t, testPolicyID, policyID)
	assert.Equal(t, "4d794e4654", assetName)
	assert.Equal(t, testPolicyID, assetID.PolicyID())
}

func TestStakeKey_Valid(t *testing.T) {
	assert.True(t, domain.StakeKey("stake1uxpdrerp9wrxunfh6ukyv5267j70fzxgw0fr3z8zeac5vyqhf9jhy").Valid())
	assert.False(t, domain.StakeKey("stake1").Valid())
	assert.False(t, domain.StakeKey("addr1qxck7r2e9q8e7fq5c").Valid())
	assert.False(t, domain.StakeKey("").Valid())
}

func TestValidTxHash(t *testing.T) {
	hash := strings.Repeat("ab", 32)
	assert.True(t, domain.ValidTxHash(hash))
	assert.True(t, domain.ValidTxHash(strings.ToUpper(hash)))
	assert.False(t, domain.ValidTxHash(hash[:62]))
	assert.False(t, domain.ValidTxHash(hash+"cd"))
	assert.False(t, domain.ValidTxHash(strings.Repeat("zz", 32)))
}

func TestValidPoolID(t *testing.T) {
	assert.True(t, domain.ValidPoolID("pool1z5uqdk7dzdxaae5633fqfcu2eqzy3a3rgtuvy087fdld7yws0xt"))
	assert.False(t, domain.ValidPoolID("pool1"))
	assert.False(t, domain.ValidPoolID("stake1uxpdrerp9wrxunfh6ukyv5267j70fzxgw0fr3z8zeac5vyqhf9jhy"))
}

func TestValidAddress(t *testing.T) {
	assert.True(t, domain.ValidAddress("addr1qxck7r2e9q8e7fq5cqvd6jfvmnlqvzlqgf6q8xv2zq5cq"))
	assert.True(t, domain.ValidAddress("addr_test1qpw0djgj0x59ngrjvqthn7enhvruxnsavsw5th63la3mjel"))
	assert.False(t, domain.ValidAddress("stake1uxpdrerp9wrxunfh6ukyv5267j70fzxgw0fr3z8zeac5vyqhf9jhy"))
	assert.False(t, domain.ValidAddress(""))
}

func TestIsValidNetwork(t *testing.T) {
	assert.True(t, domain.IsValidNetwork(domain.NetworkMainnet))
	assert.True(t, domain.IsValidNetwork(domain.NetworkPreprod))
	assert.False(t, domain.IsValidNetwork(domain.Network("testnet")))
}
