package domain

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/sha3"
)

// KindSize is the length of the record-kind header that precedes every
// persisted record.
const KindSize = 8

// Kind is the opaque record-kind header.
type Kind [KindSize]byte

func kindOf(name string) Kind {
	var k Kind
	sum := sha3.Sum256([]byte("record:" + name))
	copy(k[:], sum[:KindSize])
	return k
}

var (
	CampaignKind      = kindOf("Campaign")
	AffiliateLinkKind = kindOf("AffiliateLink")
)

// Fixed part of a campaign record: kind, owner, asset, custody authority,
// custody bump, price, commission rate, active, affiliate count, total
// settlements, then two length prefixes and created_at.
const (
	campaignFixedSize = KindSize + 3*AddressLength + 1 + 8 + 2 + 1 + 8 + 8 + 4 + 4 + 8
	linkRecordSize    = KindSize + 2*AddressLength + 8 + 8 + 8
)

// IsKind reports whether data starts with the header of kind k.
func IsKind(data []byte, k Kind) bool {
	return len(data) >= KindSize && Kind(data[:KindSize]) == k
}

// CampaignRecordSize returns the encoded size of c.
func CampaignRecordSize(c *Campaign) int {
	return campaignFixedSize + len(c.Name) + len(c.Details)
}

// MaxCampaignRecordSize is the size of a campaign with text fields at their maxima.
const MaxCampaignRecordSize = campaignFixedSize + MaxNameLength + MaxDetailsLength

// LinkRecordSize is the fixed size of an encoded affiliate link.
const LinkRecordSize = linkRecordSize

// EncodeCampaign writes c in the persisted layout. The record key (c.ID)
// is not part of the layout.
func EncodeCampaign(c *Campaign) ([]byte, error) {
	if len(c.Name) > MaxNameLength || len(c.Details) > MaxDetailsLength {
		return nil, New(CodeInvalidInput, "campaign text exceeds record bounds")
	}
	b := make([]byte, 0, CampaignRecordSize(c))
	b = append(b, CampaignKind[:]...)
	b = append(b, c.Owner[:]...)
	b = append(b, c.AssetRef[:]...)
	b = append(b, c.CustodyAuthority[:]...)
	b = append(b, c.CustodyBump)
	b = binary.LittleEndian.AppendUint64(b, c.Price)
	b = binary.LittleEndian.AppendUint16(b, c.CommissionRate)
	b = append(b, boolByte(c.Active))
	b = binary.LittleEndian.AppendUint64(b, c.AffiliateCount)
	b = binary.LittleEndian.AppendUint64(b, c.TotalSettlements)
	b = appendString(b, c.Name)
	b = appendString(b, c.Details)
	b = binary.LittleEndian.AppendUint64(b, uint64(c.CreatedAt.Unix()))
	return b, nil
}

// DecodeCampaign parses a campaign record stored under id.
func DecodeCampaign(id Address, data []byte) (*Campaign, error) {
	r := recordReader{buf: data}
	r.kind(CampaignKind, "Campaign")
	c := &Campaign{ID: id}
	c.Owner = r.address()
	c.AssetRef = r.address()
	c.CustodyAuthority = r.address()
	c.CustodyBump = r.u8()
	c.Price = r.u64()
	c.CommissionRate = r.u16()
	c.Active = r.boolean()
	c.AffiliateCount = r.u64()
	c.TotalSettlements = r.u64()
	c.Name = r.str(MaxNameLength)
	c.Details = r.str(MaxDetailsLength)
	c.CreatedAt = time.Unix(int64(r.u64()), 0).UTC()
	if err := r.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeAffiliateLink writes l in the persisted layout.
func EncodeAffiliateLink(l *AffiliateLink) []byte {
	b := make([]byte, 0, linkRecordSize)
	b = append(b, AffiliateLinkKind[:]...)
	b = append(b, l.CampaignID[:]...)
	b = append(b, l.Affiliate[:]...)
	b = binary.LittleEndian.AppendUint64(b, l.SettlementCount)
	b = binary.LittleEndian.AppendUint64(b, l.CumulativeEarnings)
	b = binary.LittleEndian.AppendUint64(b, uint64(l.CreatedAt.Unix()))
	return b
}

// DecodeAffiliateLink parses an affiliate link record stored under id.
func DecodeAffiliateLink(id Address, data []byte) (*AffiliateLink, error) {
	r := recordReader{buf: data}
	r.kind(AffiliateLinkKind, "AffiliateLink")
	l := &AffiliateLink{ID: id}
	l.CampaignID = r.address()
	l.Affiliate = r.address()
	l.SettlementCount = r.u64()
	l.CumulativeEarnings = r.u64()
	l.CreatedAt = time.Unix(int64(r.u64()), 0).UTC()
	if err := r.finish(); err != nil {
		return nil, err
	}
	return l, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func appendString(b []byte, s string) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}

// recordReader decodes sequential fields and remembers the first error.
type recordReader struct {
	buf []byte
	off int
	err error
}

func (r *recordReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.buf)-r.off < n {
		r.err = New(CodeInvalidInput, fmt.Sprintf("record truncated at offset %d", r.off))
		return nil
	}
	p := r.buf[r.off : r.off+n]
	r.off += n
	return p
}

func (r *recordReader) kind(want Kind, name string) {
	p := r.take(KindSize)
	if p != nil && Kind(p) != want {
		r.err = New(CodeInvalidInput, "record is not a "+name)
	}
}

func (r *recordReader) address() Address {
	var a Address
	if p := r.take(AddressLength); p != nil {
		copy(a[:], p)
	}
	return a
}

func (r *recordReader) u8() uint8 {
	if p := r.take(1); p != nil {
		return p[0]
	}
	return 0
}

func (r *recordReader) boolean() bool {
	v := r.u8()
	if v > 1 && r.err == nil {
		r.err = New(CodeInvalidInput, fmt.Sprintf("invalid bool byte %d", v))
	}
	return v == 1
}

func (r *recordReader) u16() uint16 {
	if p := r.take(2); p != nil {
		return binary.LittleEndian.Uint16(p)
	}
	return 0
}

func (r *recordReader) u64() uint64 {
	if p := r.take(8); p != nil {
		return binary.LittleEndian.Uint64(p)
	}
	return 0
}

func (r *recordReader) str(max int) string {
	var n uint32
	if p := r.take(4); p != nil {
		n = binary.LittleEndian.Uint32(p)
	}
	if r.err == nil && n > uint32(max) {
		r.err = New(CodeInvalidInput, fmt.Sprintf("text length %d exceeds %d", n, max))
		return ""
	}
	return string(r.take(int(n)))
}

func (r *recordReader) finish() error {
	if r.err != nil {
		return r.err
	}
	if r.off != len(r.buf) {
		return New(CodeInvalidInput, fmt.Sprintf("%d trailing bytes after record", len(r.buf)-r.off))
	}
	return nil
}
