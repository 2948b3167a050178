package checkout

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var looseEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

var checkoutMessages = map[string]string{
	"fullName.present": "الاسم مطلوب",
	"phone.present":    "رقم الهاتف مطلوب",
	"email.present":    "البريد الإلكتروني مطلوب",
	"email.looseemail": "البريد الإلكتروني غير صحيح",
	"terms.accepted":   "يجب الموافقة على الشروط والأحكام",
}

var paymentMessages = map[string]string{
	"fullName.present":      "الاسم بالكامل مطلوب",
	"phone.present":         "رقم الواتساب مطلوب",
	"email.present":         "البريد الإلكتروني مطلوب",
	"email.looseemail":      "البريد الإلكتروني غير صحيح",
	"cardNumber.present":    "رقم البطاقة مطلوب",
	"cardNumber.card16":     "رقم البطاقة يجب أن يكون 16 رقم",
	"expiryMonth.present":   "شهر انتهاء البطاقة مطلوب",
	"expiryMonth.month":     "شهر انتهاء البطاقة غير صحيح",
	"expiryYear.present":    "سنة انتهاء البطاقة مطلوبة",
	"expiryYear.year2":      "سنة انتهاء البطاقة غير صحيحة",
	"expiryYear.notexpired": "سنة انتهاء البطاقة منتهية الصلاحية",
	"cvv.present":           "رمز CVV مطلوب",
	"cvv.cvv3":              "رمز CVV يجب أن يكون 3 أرقام",
}

// Validator checks checkout and payment forms. The clock decides which
// two-digit expiry years are already in the past.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}

	v := &Validator{validate: validator.New(), now: now}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.validate.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.validate.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("accepted", func(fl validator.FieldLevel) bool {
		return fl.Field().Bool()
	})
	_ = v.validate.RegisterValidation("card16", func(fl validator.FieldLevel) bool {
		return len(DigitsOnly(fl.Field().String())) == 16
	})
	_ = v.validate.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		m, err := strconv.Atoi(DigitsOnly(fl.Field().String()))
		return err == nil && m >= 1 && m <= 12
	})
	_ = v.validate.RegisterValidation("year2", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return len(s) == 2 && DigitsOnly(s) == s
	})
	_ = v.validate.RegisterValidation("notexpired", func(fl validator.FieldLevel) bool {
		y, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return y >= v.now().Year()%100
	})
	_ = v.validate.RegisterValidation("cvv3", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return len(s) == 3 && DigitsOnly(s) == s
	})

	return v
}

// ValidateCheckout returns the field errors of the checkout form.
func (v *Validator) ValidateCheckout(form CheckoutForm) ErrorMap {
	return v.run(form, checkoutMessages)
}

// ValidatePayment returns the field errors of the payment form.
func (v *Validator) ValidatePayment(form PaymentForm) ErrorMap {
	return v.run(form, paymentMessages)
}

func (v *Validator) run(form interface{}, messages map[string]string) ErrorMap {
	errs := ErrorMap{}

	err := v.validate.Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[field] = msg
	}
	return errs
}
