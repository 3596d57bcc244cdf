package i18n

var malayalam = map[Key]string{
	LoginTitle:      "BooksByNIK-ലേക്ക് സ്വാഗതം",
	LoginName:       "പേര്",
	LoginPhone:      "ഫോൺ നമ്പർ",
	LoginSubmit:     "തുടരുക",
	NavHome:         "ഹോം",
	NavCart:         "കാർട്ട്",
	NavProfile:      "പ്രൊഫൈൽ",
	HomeTitle:       "പുസ്തകങ്ങൾ",
	DetailsAuthor:   "രചന: %s",
	DetailsCategory: "വിഭാഗം: %s",
	DetailsPrice:    "വില: %s",
	DetailsNotFound: "പുസ്തക വിവരങ്ങൾ ലഭ്യമല്ല: %s",
	AddToCart:       "🛒 കാർട്ടിലേക്ക് ചേർക്കുക",
	AddedToCart:     "🛒 കാർട്ടിലേക്ക് ചേർത്തു! (%d)",
	BuyNow:          "ഇപ്പോൾ വാങ്ങുക",
	SelectBook:      "പുസ്തകം തിരഞ്ഞെടുക്കുക.",
	CartEmpty:       "കാർട്ടിൽ നിലവിൽ പുസ്തകങ്ങളൊന്നും ചേർത്തിട്ടില്ല.",
	CartLinePrice:   "വില: %s x %d",
	CartLineTotal:   "ആകെ: %s",
	CartTotal:       "മൊത്തം തുക: %s",
	CartCheckout:    "ചെക്ക്ഔട്ട്",
	ProfileName:     "പേര്: %s",
	ProfilePhone:    "ഫോൺ: %s",
	ProfileLogout:   "ലോഗ് ഔട്ട്",
	CheckoutTitle:   "ഓർഡർ സംഗ്രഹം",
	CheckoutEmpty:   "കാർട്ടിൽ പുസ്തകങ്ങൾ ഇല്ല.",
	CheckoutAddress: "വിലാസം",
	CheckoutPincode: "പിൻ കോഡ്",
	CheckoutPay:     "%s അടയ്ക്കുക",
	ThankYouTitle:   "നന്ദി!",
	ThankYouBody:    "നിങ്ങളുടെ ഓർഡർ ലഭിച്ചു.",
	ErrNameRequired: "ദയവായി നിങ്ങളുടെ പേര് നൽകുക.",
	ErrPhoneInvalid: "ദയവായി 10 അക്ക ഫോൺ നമ്പർ നൽകുക.",
	ErrAddress:      "ദയവായി പൂർണ്ണമായ വിലാസം നൽകുക.",
	ErrPincode:      "ദയവായി 6 അക്ക പിൻ കോഡ് നൽകുക.",
	ErrSaveFailed:   "സംരക്ഷിക്കാൻ കഴിഞ്ഞില്ല, വീണ്ടും ശ്രമിക്കുക.",
	DarkModeOn:      "ഡാർക്ക് മോഡ് ഓൺ",
	DarkModeOff:     "ഡാർക്ക് മോഡ് ഓഫ്",
}

var english = map[Key]string{
	LoginTitle:      "Welcome to BooksByNIK",
	LoginName:       "Name",
	LoginPhone:      "Phone number",
	LoginSubmit:     "Continue",
	NavHome:         "Home",
	NavCart:         "Cart",
	NavProfile:      "Profile",
	HomeTitle:       "Books",
	DetailsAuthor:   "Author: %s",
	DetailsCategory: "Category: %s",
	DetailsPrice:    "Price: %s",
	DetailsNotFound: "Error: book details not found for ID: %s",
	AddToCart:       "🛒 Add to cart",
	AddedToCart:     "🛒 Added to cart! (%d)",
	BuyNow:          "Buy now",
	SelectBook:      "Please select a book.",
	CartEmpty:       "Your cart is empty.",
	CartLinePrice:   "Price: %s x %d",
	CartLineTotal:   "Total: %s",
	CartTotal:       "Grand total: %s",
	CartCheckout:    "Checkout",
	ProfileName:     "Name: %s",
	ProfilePhone:    "Phone: %s",
	ProfileLogout:   "Log out",
	CheckoutTitle:   "Order summary",
	CheckoutEmpty:   "There are no books in your cart.",
	CheckoutAddress: "Address",
	CheckoutPincode: "Pincode",
	CheckoutPay:     "Pay %s",
	ThankYouTitle:   "Thank you!",
	ThankYouBody:    "Your order has been placed.",
	ErrNameRequired: "Please enter your name.",
	ErrPhoneInvalid: "Please enter a 10 digit phone number.",
	ErrAddress:      "Please enter your full address.",
	ErrPincode:      "Please enter a 6 digit pincode.",
	ErrSaveFailed:   "Could not save, please try again.",
	DarkModeOn:      "Dark mode on",
	DarkModeOff:     "Dark mode off",
	HelpKeys:        "tab: next field • enter: confirm • ctrl+l: language • ctrl+t: theme • ctrl+c: quit",
}
