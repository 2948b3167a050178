package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/cart"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

var fixedNow = time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type mockSink struct {
	mock.Mock
}

func (m *mockSink) SendOrder(ctx context.Context, order *OrderPayload) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func validPayment() PaymentForm {
	return PaymentForm{
		FullName:    "سارة أحمد",
		Phone:       "55512345",
		Email:       "sara@example.com",
		CardNumber:  "4111 1111 1111 1111",
		ExpiryMonth: "08",
		ExpiryYear:  "27",
		CVV:         "123",
	}
}

func TestDetectCardType(t *testing.T) {
	tests := map[string]CardType{
		"4111 1111 1111 1111": CardVisa,
		"5500000000000004":    CardMastercard,
		"2221000000000009":    CardMastercard,
		"378282246310005":     CardAmex,
		"6011111111111117":    CardDiscover,
		"9682000000000000":    CardMada,
		"1234":                CardUnknown,
		"":                    CardUnknown,
	}
	for number, want := range tests {
		assert.Equal(t, want, DetectCardType(number), number)
	}
}

func TestCardHelpers(t *testing.T) {
	assert.Equal(t, "4111111111111111", DigitsOnly("4111 1111-1111 1111"))
	assert.Len(t, DigitsOnly("4111 1111 1111 1111"), 16)
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("41111111111111119999"))
	assert.Equal(t, "1111", LastFour("4111 1111 1111 1111"))
}

func TestValidateCheckout(t *testing.T) {
	v := NewValidator(clock)

	errs := v.ValidateCheckout(CheckoutForm{})
	assert.Equal(t, "الاسم مطلوب", errs["fullName"])
	assert.Equal(t, "رقم الهاتف مطلوب", errs["phone"])
	assert.Equal(t, "البريد الإلكتروني مطلوب", errs["email"])
	assert.Equal(t, "يجب الموافقة على الشروط والأحكام", errs["terms"])
	assert.Equal(t, []string{
		"الاسم مطلوب", "رقم الهاتف مطلوب", "البريد الإلكتروني مطلوب", "يجب الموافقة على الشروط والأحكام",
	}, errs.Messages())

	errs = v.ValidateCheckout(CheckoutForm{FullName: "  ", Phone: "5", Email: "nope", Terms: true})
	assert.Equal(t, "الاسم مطلوب", errs["fullName"])
	assert.Equal(t, "البريد الإلكتروني غير صحيح", errs["email"])
	assert.NotContains(t, errs, "phone")
	assert.NotContains(t, errs, "terms")

	errs = v.ValidateCheckout(CheckoutForm{FullName: "a", Phone: "5", Email: "a@b.c", Terms: true})
	assert.True(t, errs.Valid())
}

func TestValidatePayment_Valid(t *testing.T) {
	v := NewValidator(clock)
	assert.Empty(t, v.ValidatePayment(validPayment()))
}

func TestValidatePayment_FieldErrors(t *testing.T) {
	v := NewValidator(clock)

	tests := []struct {
		name   string
		mutate func(*PaymentForm)
		field  string
		msg    string
	}{
		{"short card", func(f *PaymentForm) { f.CardNumber = "4111 1111 1111" }, "cardNumber", "رقم البطاقة يجب أن يكون 16 رقم"},
		{"missing card", func(f *PaymentForm) { f.CardNumber = "" }, "cardNumber", "رقم البطاقة مطلوب"},
		{"month zero", func(f *PaymentForm) { f.ExpiryMonth = "0" }, "expiryMonth", "شهر انتهاء البطاقة غير صحيح"},
		{"month 13", func(f *PaymentForm) { f.ExpiryMonth = "13" }, "expiryMonth", "شهر انتهاء البطاقة غير صحيح"},
		{"missing year", func(f *PaymentForm) { f.ExpiryYear = "" }, "expiryYear", "سنة انتهاء البطاقة مطلوبة"},
		{"last year", func(f *PaymentForm) { f.ExpiryYear = "24" }, "expiryYear", "سنة انتهاء البطاقة منتهية الصلاحية"},
		{"four digit year", func(f *PaymentForm) { f.ExpiryYear = "2027" }, "expiryYear", "سنة انتهاء البطاقة غير صحيحة"},
		{"short cvv", func(f *PaymentForm) { f.CVV = "12" }, "cvv", "رمز CVV يجب أن يكون 3 أرقام"},
		{"missing name", func(f *PaymentForm) { f.FullName = "" }, "fullName", "الاسم بالكامل مطلوب"},
		{"missing phone", func(f *PaymentForm) { f.Phone = " " }, "phone", "رقم الواتساب مطلوب"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validPayment()
			tt.mutate(&form)

			errs := v.ValidatePayment(form)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestValidatePayment_CurrentYearIsValid(t *testing.T) {
	v := NewValidator(clock)
	form := validPayment()
	form.ExpiryYear = "25"

	assert.Empty(t, v.ValidatePayment(form))
}

func TestBuildOrder_RedactsCard(t *testing.T) {
	seats := cart.Decode("seat-B-4:VIP:400,seat-B-5:VIP:400.5")
	order := BuildOrder(OrderRequest{
		EventID:    "evt-1",
		EventTitle: "ليلة طرب",
		Seats:      seats,
		Form:       validPayment(),
	}, fixedNow)

	assert.Equal(t, "booking-1741977000000", order.BookingID)
	assert.Equal(t, 800.5, order.TotalAmount)
	assert.Equal(t, CardVisa, order.CardInfo.CardType)
	assert.Equal(t, "1111", order.CardInfo.LastFour)
	assert.Equal(t, PaymentMethod, order.PaymentInfo.PaymentMethod)
	require.Len(t, order.Seats, 2)
	assert.Equal(t, "B", order.Seats[0].Row)
	assert.Equal(t, 5, order.Seats[1].Number)

	raw, err := json.Marshal(order)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "4111 1111")
	assert.NotContains(t, string(raw), "4111111111111111")
	assert.NotContains(t, string(raw), `"cvv"`)
	assert.NotContains(t, string(raw), "expiry")
}

func TestProcessor_Proceed(t *testing.T) {
	p := NewProcessor(&mockSink{}, clock, logger.NewDiscard())
	q := cart.ParseCheckoutQuery(url.Values{
		"eventId":  {"evt-1"},
		"seats":    {"seat-A-1:VIP:400,seat-A-2:Royal:500"},
		"total":    {"1"},
		"setPrice": {"300"},
	})

	next, errs := p.Proceed(q, CheckoutForm{FullName: "x", Phone: "1", Email: "x@y.z", Terms: true})
	require.Nil(t, errs)

	u, err := url.Parse(next)
	require.NoError(t, err)
	assert.Equal(t, "/payment", u.Path)
	assert.Equal(t, "900", u.Query().Get("total"))
	assert.Equal(t, "300", u.Query().Get("setPrice"))

	next, errs = p.Proceed(q, CheckoutForm{})
	assert.Empty(t, next)
	assert.Len(t, errs, 4)
}

func TestProcessor_SubmitSuccess(t *testing.T) {
	sink := &mockSink{}
	sink.On("SendOrder", mock.Anything, mock.MatchedBy(func(o *OrderPayload) bool {
		return o.TotalAmount == 900 && o.CardInfo.LastFour == "1111"
	})).Return(nil).Once()

	p := NewProcessor(sink, clock, logger.NewDiscard())
	conf, errs, err := p.Submit(context.Background(), OrderRequest{
		EventID: "evt-1",
		Seats:   cart.Decode("seat-A1:VIP:400,seat-A2:Royal:500"),
		Form:    validPayment(),
	})

	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, "booking-1741977000000", conf.BookingID)
	assert.Equal(t, "/confirm?bookingId=booking-1741977000000&phone=55512345", conf.RedirectURL)
	sink.AssertExpectations(t)
}

func TestProcessor_SubmitInvalidFormSkipsSink(t *testing.T) {
	sink := &mockSink{}
	p := NewProcessor(sink, clock, logger.NewDiscard())

	form := validPayment()
	form.ExpiryYear = "24"

	conf, errs, err := p.Submit(context.Background(), OrderRequest{Form: form})

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Nil(t, conf)
	assert.Contains(t, errs, "expiryYear")
	sink.AssertNotCalled(t, "SendOrder", mock.Anything, mock.Anything)
}

func TestProcessor_SubmitFailureIsRetryable(t *testing.T) {
	sink := &mockSink{}
	sink.On("SendOrder", mock.Anything, mock.Anything).Return(errors.New("telegram: 502")).Once()

	p := NewProcessor(sink, clock, logger.NewDiscard())
	_, _, err := p.Submit(context.Background(), OrderRequest{
		Seats: cart.Decode("seat-A1:VIP:400"),
		Form:  validPayment(),
	})

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.True(t, submitErr.Retryable)
	assert.Equal(t, "booking-1741977000000", submitErr.BookingID)
}
