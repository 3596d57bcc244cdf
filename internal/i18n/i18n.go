// Package i18n holds the storefront's UI strings in Malayalam and English.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Key identifies a UI string
type Key string

const (
	LoginTitle        Key = "login.title"
	LoginName         Key = "login.name"
	LoginPhone        Key = "login.phone"
	LoginSubmit       Key = "login.submit"
	NavHome           Key = "nav.home"
	NavCart           Key = "nav.cart"
	NavProfile        Key = "nav.profile"
	HomeTitle         Key = "home.title"
	DetailsAuthor     Key = "details.author"
	DetailsCategory   Key = "details.category"
	DetailsPrice      Key = "details.price"
	DetailsNotFound   Key = "details.not_found"
	AddToCart         Key = "actions.add"
	AddedToCart       Key = "actions.added"
	BuyNow            Key = "actions.buy"
	SelectBook        Key = "actions.select_book"
	CartEmpty         Key = "cart.empty"
	CartLinePrice     Key = "cart.line_price"
	CartLineTotal     Key = "cart.line_total"
	CartTotal         Key = "cart.total"
	CartCheckout      Key = "cart.checkout"
	ProfileName       Key = "profile.name"
	ProfilePhone      Key = "profile.phone"
	ProfileLogout     Key = "profile.logout"
	CheckoutTitle     Key = "checkout.title"
	CheckoutEmpty     Key = "checkout.empty"
	CheckoutAddress   Key = "checkout.address"
	CheckoutPincode   Key = "checkout.pincode"
	CheckoutPay       Key = "checkout.pay"
	ThankYouTitle     Key = "thankyou.title"
	ThankYouBody      Key = "thankyou.body"
	ErrNameRequired   Key = "error.name_required"
	ErrPhoneInvalid   Key = "error.phone_invalid"
	ErrAddress        Key = "error.address_incomplete"
	ErrPincode        Key = "error.pincode_invalid"
	ErrSaveFailed     Key = "error.save_failed"
	DarkModeOn        Key = "prefs.dark_on"
	DarkModeOff       Key = "prefs.dark_off"
	HelpKeys          Key = "help.keys"
)

var (
	Malayalam = language.Malayalam
	English   = language.English

	supported = []language.Tag{Malayalam, English}
	matcher   = language.NewMatcher(supported)
)

// Match returns the supported language closest to tag (a BCP-47 string such
// as "ml-IN" or "en-GB"). Unparseable tags fall back to Malayalam.
func Match(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return Malayalam
	}
	_, i, conf := matcher.Match(t)
	if conf == language.No {
		return Malayalam
	}
	return supported[i]
}

// Messages is the string table of one language
type Messages struct {
	tag  language.Tag
	text map[Key]string
}

// For returns the messages of the supported language closest to tag
func For(tag string) Messages {
	t := Match(tag)
	if t == English {
		return Messages{tag: t, text: english}
	}
	return Messages{tag: t, text: malayalam}
}

// Tag returns the language of m
func (m Messages) Tag() language.Tag { return m.tag }

// T returns the string for key, falling back to English and then to the key itself
func (m Messages) T(key Key) string {
	if s, ok := m.text[key]; ok {
		return s
	}
	if s, ok := english[key]; ok {
		return s
	}
	return string(key)
}

// F formats the string for key with args
func (m Messages) F(key Key, args ...any) string {
	return fmt.Sprintf(m.T(key), args...)
}

// Money formats an amount in whole rupees
func Money(amount int64) string {
	return fmt.Sprintf("₹%d", amount)
}
