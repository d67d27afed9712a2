package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port/mocks"
)

var (
	ownerHex    = "0a0000000000000000000000000000000000000000000000000000000000000a"
	buyerHex    = "0b0000000000000000000000000000000000000000000000000000000000000b"
	campaignHex = "1c0000000000000000000000000000000000000000000000000000000000001c"
	linkHex     = "1d0000000000000000000000000000000000000000000000000000000000001d"
	assetHex    = "a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5"
)

func newTestHandler(t *testing.T) (*mocks.MockEscrowUseCase, http.Handler) {
	svc := mocks.NewMockEscrowUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	return svc, NewHandler(svc, logger, metrics).Router()
}

func do(h http.Handler, method, path, signer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if signer != "" {
		req.Header.Set(SignerHeader, signer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCreateCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	owner := domain.MustParseAddress(ownerHex)
	asset := domain.MustParseAddress(assetHex)

	want := domain.CampaignParams{Owner: owner, AssetRef: asset, Price: 1000, CommissionRate: 500, Name: "drop", Details: "d"}
	svc.EXPECT().CreateCampaign(mock.Anything, owner, want).
		Return(&domain.Campaign{ID: domain.MustParseAddress(campaignHex), Owner: owner, AssetRef: asset, Price: 1000}, nil)

	body := `{"asset_ref":"` + assetHex + `","price":1000,"commission_rate":500,"name":"drop","details":"d"}`
	rec := do(h, http.MethodPost, "/api/v1/campaigns", ownerHex, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/campaigns/"+campaignHex, rec.Header().Get("Location"))
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, campaignHex, got["id"])
	assert.Equal(t, ownerHex, got["owner"])
}

func TestCreateCampaignRequestErrors(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(h, http.MethodPost, "/api/v1/campaigns", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/campaigns", "zz", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/campaigns", ownerHex, `{"price":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.CodeInvalidInput, decodeError(t, rec).Code)

	rec = do(h, http.MethodPost, "/api/v1/campaigns", ownerHex, `{"unknown":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidPrice, http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrAlreadyExists, http.StatusConflict},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrEscrowEmpty, http.StatusUnprocessableEntity},
		{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{domain.ErrCalculationError, http.StatusUnprocessableEntity},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().GetCampaign(mock.Anything, domain.MustParseAddress(campaignHex)).Return(nil, tt.err)

			rec := do(h, http.MethodGet, "/api/v1/campaigns/"+campaignHex, "", "")
			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			if code := domain.CodeOf(tt.err); code != "" {
				assert.Equal(t, code, body.Code)
			} else {
				assert.Equal(t, domain.Code("INTERNAL"), body.Code)
				assert.Equal(t, "internal error", body.Message)
			}
		})
	}
}

func TestCampaignRecord(t *testing.T) {
	svc, h := newTestHandler(t)
	c := &domain.Campaign{
		ID:       domain.MustParseAddress(campaignHex),
		Owner:    domain.MustParseAddress(ownerHex),
		AssetRef: domain.MustParseAddress(assetHex),
		Price:    7,
		Name:     "drop",
	}
	svc.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/"+campaignHex+"/record", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))

	want, err := domain.EncodeCampaign(c)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, rec.Body.Bytes()))
}

func TestSetCampaignActive(t *testing.T) {
	svc, h := newTestHandler(t)
	owner := domain.MustParseAddress(ownerHex)
	id := domain.MustParseAddress(campaignHex)
	svc.EXPECT().SetCampaignActive(mock.Anything, owner, id, false).Return(&domain.Campaign{ID: id}, nil)

	rec := do(h, http.MethodPut, "/api/v1/campaigns/"+campaignHex+"/active", ownerHex, `{"active":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAffiliateLink(t *testing.T) {
	svc, h := newTestHandler(t)
	affiliate := domain.MustParseAddress(buyerHex)
	campaignID := domain.MustParseAddress(campaignHex)
	svc.EXPECT().CreateAffiliateLink(mock.Anything, affiliate, campaignID).
		Return(&domain.AffiliateLink{ID: domain.MustParseAddress(linkHex), CampaignID: campaignID, Affiliate: affiliate}, nil)

	rec := do(h, http.MethodPost, "/api/v1/campaigns/"+campaignHex+"/affiliates", buyerHex, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/affiliates/"+linkHex, rec.Header().Get("Location"))
}

func TestAffiliateLinkRecord(t *testing.T) {
	svc, h := newTestHandler(t)
	l := &domain.AffiliateLink{ID: domain.MustParseAddress(linkHex), CampaignID: domain.MustParseAddress(campaignHex)}
	svc.EXPECT().GetAffiliateLink(mock.Anything, l.ID).Return(l, nil)

	rec := do(h, http.MethodGet, "/api/v1/affiliates/"+linkHex+"/record", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.EncodeAffiliateLink(l), rec.Body.Bytes())
}

func TestProcessSale(t *testing.T) {
	svc, h := newTestHandler(t)
	req := domain.SaleRequest{
		CampaignID:      domain.MustParseAddress(campaignHex),
		AffiliateLinkID: domain.MustParseAddress(linkHex),
		Buyer:           domain.MustParseAddress(buyerHex),
		SellerPayout:    domain.MustParseAddress(ownerHex),
		AffiliatePayout: domain.MustParseAddress(linkHex),
		Asset:           domain.MustParseAddress(assetHex),
	}
	svc.EXPECT().ProcessSale(mock.Anything, req).Return(&domain.SettlementResult{
		Settlement: domain.Settlement{ID: "s1", Split: domain.Split{Price: 100, Commission: 5, SellerShare: 95}},
	}, nil).Once()
	svc.EXPECT().ProcessSale(mock.Anything, req).Return(nil, domain.ErrEscrowEmpty).Once()

	body := `{"affiliate_link":"` + linkHex + `","seller":"` + ownerHex + `","affiliate":"` + linkHex + `","asset":"` + assetHex + `"}`
	path := "/api/v1/campaigns/" + campaignHex + "/sales"

	rec := do(h, http.MethodPost, path, buyerHex, body)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.SettlementResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, uint64(5), got.Settlement.Commission)
	assert.Equal(t, uint64(95), got.Settlement.SellerShare)

	rec = do(h, http.MethodPost, path, buyerHex, body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, domain.CodeEscrowEmpty, decodeError(t, rec).Code)
}

func TestListSettlements(t *testing.T) {
	svc, h := newTestHandler(t)
	id := domain.MustParseAddress(campaignHex)
	svc.EXPECT().ListSettlements(mock.Anything, id, 5).Return(nil, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/"+campaignHex+"/settlements?limit=5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/v1/campaigns/"+campaignHex+"/settlements?limit=x", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBalance(t *testing.T) {
	svc, h := newTestHandler(t)
	holder := domain.MustParseAddress(buyerHex)
	svc.EXPECT().Balance(mock.Anything, holder, domain.NativeAsset).Return(uint64(42), nil)

	rec := do(h, http.MethodGet, "/api/v1/holdings/"+buyerHex+"/native", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"holder":"`+buyerHex+`","asset":"`+domain.NativeAsset.String()+`","amount":42}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/v1/holdings/nope/native", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsRoute(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}
