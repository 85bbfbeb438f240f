// internal/locale/messages.go
package locale

import "fmt"

// Language codes the assistant can converse in (ISO 639-1).
const (
	Telugu  = "te"
	Tamil   = "ta"
	Marathi = "mr"
	Bengali = "bn"
	Odia    = "or"
	English = "en"
)

// languageNames maps a language code to its display name. Display names are
// kept in Latin script so a caller can announce the choice before the session
// language is settled.
var languageNames = map[string]string{
	English: "English",
	Telugu:  "Telugu",
	Tamil:   "Tamil",
	Marathi: "Marathi",
	Bengali: "Bengali",
	Odia:    "Odia",
}

// supportedOrder fixes iteration order for prompts and parsing so the same
// input always resolves to the same language.
var supportedOrder = []string{English, Telugu, Tamil, Marathi, Bengali, Odia}

// Supported returns the language codes the catalog carries, in stable order.
func Supported() []string {
	out := make([]string, len(supportedOrder))
	copy(out, supportedOrder)
	return out
}

// IsSupported reports whether code is a language the assistant speaks.
func IsSupported(code string) bool {
	_, ok := languageNames[code]
	return ok
}

// LanguageName returns the display name for a language code, or the code
// itself when it is unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// MessageID identifies a canned assistant utterance in the catalog. Using a
// custom type ensures that only predefined constants can be used where a
// MessageID is expected, preventing a class of bugs.
type MessageID string

const (
	// -- Session framing --
	MsgWelcome       MessageID = "welcome"        // Opening greeting.
	MsgFarewell      MessageID = "farewell"       // Full goodbye after a completed flow.
	MsgFarewellShort MessageID = "farewell_short" // Short goodbye on a quit command.

	// -- Reprompts --
	MsgSayAgain MessageID = "say_again"  // Free-form input was empty or unusable.
	MsgSayYesNo MessageID = "say_yes_no" // A yes/no answer could not be parsed.

	// -- Slot-filling prompts --
	MsgAskNeed     MessageID = "ask_need"
	MsgAskAge      MessageID = "ask_age"
	MsgAskIncome   MessageID = "ask_income"
	MsgAskCategory MessageID = "ask_category"

	// -- Scheme presentation --
	MsgEligibleSchemes   MessageID = "eligible_schemes" // Takes the bullet list of matches.
	MsgAskMoreInfo       MessageID = "ask_more_info"    // Offer documents/process detail.
	MsgSchemeGuidance    MessageID = "scheme_guidance"  // Takes scheme name and guidance body.
	MsgDocumentsLabel    MessageID = "documents_label"
	MsgWhereToApplyLabel MessageID = "where_to_apply_label"
	MsgStepsLabel        MessageID = "steps_label"
	MsgAskSchemeDetails  MessageID = "ask_scheme_details" // Takes the mentioned scheme name.

	// -- Application flow --
	MsgAskApply             MessageID = "ask_apply"             // Satisfied? Want to apply?
	MsgApplicationSubmitted MessageID = "application_submitted" // Takes scheme name and application ID.
	MsgNoMoreEligible       MessageID = "no_more_eligible"
	MsgAskPickAvailable     MessageID = "ask_pick_available"

	// -- Session continuation --
	MsgAskEnoughHelp     MessageID = "ask_enough_help"
	MsgConfirmEnoughHelp MessageID = "confirm_enough_help"
	MsgReaskDetails      MessageID = "reask_details"

	// -- Language selection --
	MsgDetectLanguage      MessageID = "detect_language"
	MsgLanguageConfirm     MessageID = "language_confirm"      // Takes the detected language name.
	MsgLanguageNotDetected MessageID = "language_not_detected"
	MsgLanguageReselect    MessageID = "language_reselect"
	MsgLanguageRetry       MessageID = "language_retry"

	// -- Failure surfaces --
	MsgNotUnderstood   MessageID = "not_understood"
	MsgProcessingError MessageID = "processing_error"
	MsgContradiction   MessageID = "contradiction" // Takes field name, old value, new value.
)

// catalog holds every canned utterance per language. English doubles as the
// fallback: a missing entry for a language resolves to the English text, so
// only English is required to be complete.
var catalog = map[MessageID]map[string]string{
	MsgWelcome: {
		English: "Hello! I am your welfare assistant. How can I help you today?",
		Telugu:  "నమస్కారం! నేను మీ సహాయ కార్యకర్త. మీకు ఎలా సహాయం చేయగలను?",
		Tamil:   "வணக்கம்! நான் உங்கள் நல உதவியாளர். நான் உங்களுக்கு எப்படி உதவ முடியும்?",
		Marathi: "नमस्कार! मी तुमचा कल्याण सहाय्यक आहे. मी तुम्हाला कशी मदत करू शकतो?",
		Bengali: "নমস্কার! আমি আপনার কল্যাণ সহায়ক। আমি আপনাকে কীভাবে সাহায্য করতে পারি?",
		Odia:    "ନମସ୍କାର! ମୁଁ ଆପଣଙ୍କର କଲ୍ୟାଣ ସହାୟକ | ମୁଁ ଆପଣଙ୍କୁ କିପରି ସାହାଯ୍ୟ କରିପାରିବି?",
	},
	MsgFarewell: {
		English: "Thank you! Visit again if any help is needed. Have a great day!",
		Telugu:  "ధన్యవాదాలు! ఏదైనా సహాయం అవసరమైతే మళ్లీ సందర్శించండి. మీకు మంచి రోజు కలగాలి!",
		Tamil:   "நன்றி! எந்த உதவி தேவைப்பட்டால் மீண்டும் வாருங்கள். உங்களுக்கு நல்ல நாள் வேண்டும்!",
		Marathi: "धन्यवाद! जर काही मदत हवी असेल तर पुन्हा भेट द्या. तुमचा दिवस चांगला जावो!",
		Bengali: "ধন্যবাদ! আর কোন সাহায্যের প্রয়োজন হলে আবার আসুন। আপনার ভাল দিন হোক!",
		Odia:    "ଧନ୍ୟବାଦ! ଯଦି ଆହୁରି ସାହାଯ୍ୟ ଦରକାର ତେବେ ପୁନର୍ବାର ଆସନ୍ତୁ। ଆପଣଙ୍କର ଭଲ ଦିନ ହେଉ!",
	},
	MsgFarewellShort: {
		English: "Thank you! Have a great day!",
		Telugu:  "ధన్యవాదాలు! మీకు మంచి రోజు కలగాలి!",
		Tamil:   "நன்றி! உங்களுக்கு நல்ல நாள் வேண்டும்!",
		Marathi: "धन्यवाद! तुमचा दिवस चांगला जावो!",
		Bengali: "ধন্যবাদ! আপনার ভাল দিন হোক!",
		Odia:    "ଧନ୍ୟବାଦ! ଆପଣଙ୍କର ଭଲ ଦିନ ହେଉ!",
	},
	MsgSayAgain: {
		English: "Sorry, I didn't understand. Please say again.",
		Telugu:  "క్షమించండి, నేను అర్థం చేసుకోలేదు. దయచేసి మళ్లీ చెప్పండి.",
		Tamil:   "மன்னிக்கவும், எனக்கு புரியவில்லை. தயவுசெய்து மீண்டும் சொல்லுங்கள்.",
		Marathi: "माफ करा, मला समजले नाही. कृपया पुन्हा बोला.",
		Bengali: "দুঃখিত, আমি বুঝতে পারিনি। অনুগ্রহ করে আবার বলুন।",
		Odia:    "କ୍ଷମା କରନ୍ତୁ, ମୁଁ ବୁଝି ପାରିଲି ନାହିଁ। ଦୟାକରି ପୁନର୍ବାର କହନ୍ତୁ।",
	},
	MsgSayYesNo: {
		English: "Sorry, I didn't understand. Please say yes or no.",
		Telugu:  "క్షమించండి, నేను అర్థం చేసుకోలేదు. దయచేసి అవును లేదా కాదు అని చెప్పండి.",
		Tamil:   "மன்னிக்கவும், எனக்கு புரியவில்லை. தயவுசெய்து ஆம் அல்லது இல்லை என்று சொல்லுங்கள்.",
		Marathi: "माफ करा, मला समजले नाही. कृपया हो किंवा नाही बोला.",
		Bengali: "দুঃখিত, আমি বুঝতে পারিনি। অনুগ্রহ করে হ্যাঁ বা না বলুন।",
		Odia:    "କ୍ଷମା କରନ୍ତୁ, ମୁଁ ବୁଝି ପାରିଲି ନାହିଁ। ଦୟାକରି ହଁ କିମ୍ବା ନା କହନ୍ତୁ।",
	},
	MsgAskNeed: {
		English: "What do you need? Please tell me your requirement.",
		Telugu:  "మీకు ఏమి కావాలి? దయచేసి మీ అవసరాన్ని చెప్పండి.",
		Tamil:   "உங்களுக்கு என்ன தேவை? தயவுசெய்து உங்கள் தேவையைக் கூறுங்கள்.",
		Marathi: "तुम्हाला काय हवे आहे? कृपया तुमची गरज सांगा.",
		Bengali: "আপনার কী প্রয়োজন? অনুগ্রহ করে আপনার প্রয়োজন বলুন।",
		Odia:    "ଆପଣଙ୍କୁ କଣ ଦରକାର? ଦୟାକରି ଆପଣଙ୍କର ଆବଶ୍ୟକତା କହନ୍ତୁ।",
	},
	MsgAskAge: {
		English: "Please tell me your age.",
		Telugu:  "దయచేసి మీ వయస్సు చెప్పండి.",
		Tamil:   "தயவு செய்து உங்கள் வயதை கூறுங்கள்.",
		Marathi: "कृपया तुमचे वय सांगा.",
		Bengali: "অনুগ্রহ করে আপনার বয়স বলুন।",
		Odia:    "ଦୟାକରି ଆପଣଙ୍କ ବୟସ୍ କହନ୍ତୁ।",
	},
	MsgAskIncome: {
		English: "Please tell me your approximate annual income.",
		Telugu:  "మీ వార్షిక ఆదాయం సుమారు ఎంత?",
		Tamil:   "உங்கள் வருடாந்திர வருமானம் எவ்வளவு?",
		Marathi: "तुमचे वार्षिक उत्पन्न किती आहे?",
		Bengali: "আপনার বার্ষিক আয় কত?",
		Odia:    "ଆପଣଙ୍କ ବାର୍ଷିକ ଆୟ କେତେ?",
	},
	MsgAskCategory: {
		English: "What is your social category? (SC/ST/OBC/General)",
		Telugu:  "మీ సామాజిక వర్గం ఏమిటి? (SC/ST/OBC/General)",
		Tamil:   "உங்கள் சமூக வகுப்பு என்ன? (SC/ST/OBC/General)",
		Marathi: "आपली सामाजिक श्रेणी काय आहे? (SC/ST/OBC/General)",
		Bengali: "আপনার সামাজিক শ্রেণী কী? (SC/ST/OBC/General)",
		Odia:    "ଆପଣଙ୍କ ସମାଜିକ ଶ୍ରେଣୀ କୋଣସି? (SC/ST/OBC/General)",
	},
	MsgEligibleSchemes: {
		English: "Based on your details, you may be eligible for: \n%s",
		Telugu:  "మీ వివరాల ప్రకారం, మీరు అర్హత కలిగిన స్కీమ్‌లు: \n%s",
		Tamil:   "உங்கள் விவரங்களைப் பொறுத்து, நீங்கள் தகுதியான திட்டங்கள்: \n%s",
		Marathi: "तुमच्या माहितीनुसार, तुम्ही पात्र असू शकता: \n%s",
		Bengali: "আপনার তথ্য অনুযায়ী, আপনি যে স্কিমগুলির জন্য যোগ্য হতে পারেন: \n%s",
		Odia:    "ଆପଣଙ୍କ ତଥ୍ୟ ଅନୁସାରେ, ଆପଣ ଯୋଗ୍ୟ ହୋଇପାରନ୍ତି: \n%s",
	},
	MsgAskMoreInfo: {
		English: "Do you need any more information about these schemes, such as required documents, where to apply, or the application process? Please say yes or no.",
		Telugu:  "ఈ స్కీమ్‌ల గురించి మీకు మరింత సమాచారం అవసరమా? ఉదాహరణకు, అవసరమైన పత్రాలు, ఎక్కడ దరఖాస్తు చేయాలి, లేదా దరఖాస్తు ప్రక్రియ? దయచేసి అవును లేదా కాదు అని చెప్పండి.",
		Tamil:   "இந்த திட்டங்கள் பற்றி உங்களுக்கு மேலும் தகவல் தேவையா? எடுத்துக்காட்டாக, தேவையான ஆவணங்கள், எங்கு விண்ணப்பிக்க வேண்டும், அல்லது விண்ணப்ப செயல்முறை? தயவுசெய்து ஆம் அல்லது இல்லை என்று சொல்லுங்கள்.",
		Marathi: "या योजनांबद्दल तुम्हाला आणखी माहिती हवी आहे का? उदाहरणार्थ, आवश्यक कागदपत्रे, कोठे अर्ज करायचा, किंवा अर्ज प्रक्रिया? कृपया हो किंवा नाही बोला.",
		Bengali: "এই স্কিমগুলির সম্পর্কে আপনার আরও তথ্য প্রয়োজন? উদাহরণস্বরূপ, প্রয়োজনীয় নথি, কোথায় আবেদন করবেন, বা আবেদনের প্রক্রিয়া? অনুগ্রহ করে হ্যাঁ বা না বলুন।",
		Odia:    "ଏହି ଯୋଜନାଗୁଡ଼ିକ ବିଷୟରେ ଆପଣଙ୍କର ଆହୁରି ସୂଚନା ଦରକାର କି? ଉଦାହରଣ ସ୍ୱରୂପ, ଆବଶ୍ୟକ ଦସ୍ତାବେଜ, କେଉଁଠାରେ ଆବେଦନ କରିବେ, କିମ୍ବା ଆବେଦନ ପ୍ରକ୍ରିୟା? ଦୟାକରି ହଁ କିମ୍ବା ନା କହନ୍ତୁ।",
	},
	MsgSchemeGuidance: {
		English: "For %s: \n%s",
		Telugu:  "%s కోసం: \n%s",
		Tamil:   "%s க்காக: \n%s",
		Marathi: "%s साठी: \n%s",
		Bengali: "%s এর জন্য: \n%s",
		Odia:    "%s ପାଇଁ: \n%s",
	},
	MsgDocumentsLabel: {
		English: "Required documents:",
		Telugu:  "అవసరమైన పత్రాలు:",
		Tamil:   "தேவையான ஆவணங்கள்:",
		Marathi: "आवश्यक कागदपत्रे:",
		Bengali: "প্রয়োজনীয় নথি:",
		Odia:    "ଆବଶ୍ୟକ ଦସ୍ତାବେଜ:",
	},
	MsgWhereToApplyLabel: {
		English: "Where to apply:",
		Telugu:  "ఎక్కడ దరఖాస్తు చేయాలి:",
		Tamil:   "எங்கு விண்ணப்பிக்க வேண்டும்:",
		Marathi: "कोठे अर्ज करायचा:",
		Bengali: "কোথায় আবেদন করবেন:",
		Odia:    "କେଉଁଠାରେ ଆବେଦନ କରିବେ:",
	},
	MsgStepsLabel: {
		English: "Steps to apply:",
		Telugu:  "అప్లై చేసే దశలు:",
		Tamil:   "விண்ணப்பிக்கும் படிகள்:",
		Marathi: "अर्ज करण्याच्या पायऱ्या:",
		Bengali: "আবেদনের ধাপসমূহ:",
		Odia:    "ଆବେଦନ ପଦକ୍ରମ:",
	},
	MsgAskSchemeDetails: {
		English: "Should I display the information needed that helps you for the %s scheme, such as required documents, where to apply, and the application process? Please say yes or no.",
		Telugu:  "నేను %s స్కీమ్‌కు మీకు సహాయపడే సమాచారాన్ని ప్రదర్శించాలా? ఉదాహరణకు, అవసరమైన పత్రాలు, ఎక్కడ దరఖాస్తు చేయాలి, మరియు దరఖాస్తు ప్రక్రియ? దయచేసి అవును లేదా కాదు అని చెప్పండి.",
		Tamil:   "நான் %s திட்டத்திற்கு உங்களுக்கு உதவும் தகவல்களை காட்ட வேண்டுமா? எடுத்துக்காட்டாக, தேவையான ஆவணங்கள், எங்கு விண்ணப்பிக்க வேண்டும், மற்றும் விண்ணப்ப செயல்முறை? தயவுசெய்து ஆம் அல்லது இல்லை என்று சொல்லுங்கள்.",
		Marathi: "मी %s योजनेसाठी तुम्हाला मदत करणारी माहिती दाखवावी का? उदाहरणार्थ, आवश्यक कागदपत्रे, कोठे अर्ज करायचा, आणि अर्ज प्रक्रिया? कृपया हो किंवा नाही बोला.",
		Bengali: "আমি কি %s স্কিমের জন্য আপনার প্রয়োজনীয় তথ্য প্রদর্শন করব? উদাহরণস্বরূপ, প্রয়োজনীয় নথি, কোথায় আবেদন করবেন, এবং আবেদনের প্রক্রিয়া? অনুগ্রহ করে হ্যাঁ বা না বলুন।",
		Odia:    "ମୁଁ %s ଯୋଜନା ପାଇଁ ଆପଣଙ୍କୁ ସାହାଯ୍ୟ କରୁଥିବା ସୂଚନା ପ୍ରଦର୍ଶନ କରିବି କି? ଉଦାହରଣ ସ୍ୱରୂପ, ଆବଶ୍ୟକ ଦସ୍ତାବେଜ, କେଉଁଠାରେ ଆବେଦନ କରିବେ, ଏବଂ ଆବେଦନ ପ୍ରକ୍ରିୟା? ଦୟାକରି ହଁ କିମ୍ବା ନା କହନ୍ତୁ।",
	},
	MsgAskApply: {
		English: "Are you satisfied with this information? Do you want to apply for this scheme? Please say yes or no.",
		Telugu:  "మీరు ఈ సమాచారంతో సంతృప్తి చెందారా? మీరు ఈ స్కీమ్‌కు దరఖాస్తు చేయాలనుకుంటున్నారా? దయచేసి అవును లేదా కాదు అని చెప్పండి.",
		Tamil:   "இந்த தகவலில் நீங்கள் திருப்தியா? இந்த திட்டத்திற்கு விண்ணப்பிக்க விரும்புகிறீர்களா? தயவுசெய்து ஆம் அல்லது இல்லை என்று சொல்லுங்கள்.",
		Marathi: "तुम्ही या माहितीने समाधानी आहात का? तुम्ही या योजनेसाठी अर्ज करू इच्छिता का? कृपया हो किंवा नाही बोला.",
		Bengali: "আপনি এই তথ্যে সন্তুষ্ট? আপনি এই স্কিমের জন্য আবেদন করতে চান? অনুগ্রহ করে হ্যাঁ বা না বলুন।",
		Odia:    "ଆପଣ ଏହି ସୂଚନାରେ ସନ୍ତୁଷ୍ଟ କି? ଆପଣ ଏହି ଯୋଜନା ପାଇଁ ଆବେଦନ କରିବାକୁ ଚାହୁଁଛନ୍ତି କି? ଦୟାକରି ହଁ କିମ୍ବା ନା କହନ୍ତୁ।",
	},
	MsgApplicationSubmitted: {
		English: "Your application for %s has been successfully submitted. Your application ID is %s.",
		Telugu:  "%s కోసం మీ దరఖాస్తు విజయవంతంగా సమర్పించబడింది. మీ దరఖాస్తు ID %s.",
		Tamil:   "%s க்கான உங்கள் விண்ணப்பம் வெற்றிகரமாக சமர்ப்பிக்கப்பட்டது. உங்கள் விண்ணப்ப ID %s.",
		Marathi: "%s साठी तुमची अर्ज यशस्वीपणे सबमिट केली आहे. तुमचा अर्ज ID %s.",
		Bengali: "%s এর জন্য আপনার আবেদন সফলভাবে জমা দেওয়া হয়েছে। আপনার আবেদন ID %s.",
		Odia:    "%s ପାଇଁ ଆପଣଙ୍କର ଆବେଦନ ସଫଳତାପୂର୍ବକ ଦାଖଲ କରାଯାଇଛି। ଆପଣଙ୍କର ଆବେଦନ ID %s।",
	},
	MsgNoMoreEligible: {
		English: "There are no more eligible schemes available. However, here are the schemes that are available:",
		Telugu:  "ఇక మరిన్ని అర్హత కలిగిన స్కీమ్‌లు లేవు. అయినప్పటికీ, ఇక్కడ అందుబాటులో ఉన్న స్కీమ్‌లు ఇవి:",
		Tamil:   "இனி தகுதியான திட்டங்கள் இல்லை. இருப்பினும், கிடைக்கக்கூடிய திட்டங்கள் இங்கே:",
		Marathi: "आणखी पात्र योजना उपलब्ध नाहीत. तथापि, येथे उपलब्ध योजना आहेत:",
		Bengali: "আর কোন যোগ্য স্কিম নেই। তবে, এখানে উপলব্ধ স্কিমগুলি রয়েছে:",
		Odia:    "ଆହୁରି ଯୋଗ୍ୟ ଯୋଜନା ଉପଲବ୍ଧ ନାହିଁ। ଯଦିଓ, ଏଠାରେ ଉପଲବ୍ଧ ଯୋଜନାଗୁଡ଼ିକ ହେଉଛି:",
	},
	MsgAskPickAvailable: {
		English: "Are you okay with any of these available schemes? If yes, please tell me which one you want to apply for.",
		Telugu:  "మీరు ఈ అందుబాటులో ఉన్న స్కీమ్‌లలో దేనితోనైనా సరిపోతారా? అవును అయితే, దయచేసి మీరు దరఖాస్తు చేయాలనుకునేది ఏది అని చెప్పండి.",
		Tamil:   "இந்த கிடைக்கக்கூடிய திட்டங்களில் ஏதேனும் உங்களுக்கு பொருந்துமா? ஆம் என்றால், தயவுசெய்து நீங்கள் விண்ணப்பிக்க விரும்பும் திட்டத்தைச் சொல்லுங்கள்.",
		Marathi: "तुम्ही या उपलब्ध योजनांपैकी कोणत्याही बरोबर सहमत आहात का? होय असल्यास, कृपया तुम्हाला कोणत्या योजनेसाठी अर्ज करायचा आहे ते सांगा.",
		Bengali: "এই উপলব্ধ স্কিমগুলির মধ্যে কোনও একটি আপনার জন্য ঠিক আছে? হ্যাঁ হলে, অনুগ্রহ করে কোনটির জন্য আবেদন করতে চান তা বলুন।",
		Odia:    "ଏହି ଉପଲବ୍ଧ ଯୋଜନାଗୁଡ଼ିକ ମଧ୍ୟରୁ କୌଣସି ଗୋଟିଏ ଆପଣଙ୍କ ପାଇଁ ଠିକ୍ ଅଛି କି? ହଁ ହେଲେ, ଦୟାକରି ଆପଣ କେଉଁଟି ପାଇଁ ଆବେଦନ କରିବାକୁ ଚାହୁଁଛନ୍ତି ତାହା କହନ୍ତୁ।",
	},
	MsgAskEnoughHelp: {
		English: "Is this enough help for now? Please say yes or no.",
		Telugu:  "ఇది సరిపోతుందా? దయచేసి అవును లేదా కాదు అని చెప్పండి.",
		Tamil:   "இதனால் போதுமா? தயவுசெய்து ஆம் அல்லது இல்லை என்று சொல்லுங்கள்.",
		Marathi: "हे पुरेसे आहे का? कृपया हो किंवा नाही बोला.",
		Bengali: "এগুলো কি যথেষ্ট? অনুগ্রহ করে হ্যাঁ বা না বলুন।",
		Odia:    "ଏହା ପର୍ଯ୍ୟାପ୍ତ କି? ଦୟାକରି ହଁ କିମ୍ବା ନା କହନ୍ତୁ।",
	},
	MsgConfirmEnoughHelp: {
		English: "Are you sure you have enough help? Please confirm yes or no.",
		Telugu:  "మీకు తగినంత సహాయం లభించిందని మీరు ఖచ్చితంగా అనుకుంటున్నారా? దయచేసి అవును లేదా కాదు అని నిర్ధారించండి.",
		Tamil:   "தங்களுக்கு போதுமான உதவி கிடைத்தது என்பது உறுதியா? தயவுசெய்து ஆம் அல்லது இல்லை என உறுதிப்படுத்துங்கள்.",
		Marathi: "तुम्हाला पुरेसे मदत मिळाली आहे याची खात्री आहे का? कृपया हो किंवा नाही निश्चित करा.",
		Bengali: "আপনি কি নিশ্চিত যে আপনার যথেষ্ট সাহায্য হয়েছে? অনুগ্রহ করে হ্যাঁ বা না নিশ্চিত করুন।",
		Odia:    "ଆପଣଙ୍କର ଯଥେଷ୍ଟ ସାହାଯ୍ୟ ମିଳିଛି ବୋଲି ଆପଣ ନିଶ୍ଚିତ କି? ଦୟାକରି ହଁ କିମ୍ବା ନା ନିଶ୍ଚିତ କରନ୍ତୁ।",
	},
	MsgReaskDetails: {
		English: "Let me ask you your details again to find the right programs for you.",
		Telugu:  "మీకు సరైన ప్రోగ్రామ్‌లను కనుగొనడానికి మళ్లీ మీ వివరాలను అడుగుతున్నాను.",
		Tamil:   "உங்களுக்கு சரியான திட்டங்களைக் கண்டுபிடிக்க உங்கள் விவரங்களை மீண்டும் கேட்கிறேன்.",
		Marathi: "तुम्हाला योग्य कार्यक्रम सापडावेत म्हणून मी तुमच्या तपशीलांना पुन्हा विचारत आहे.",
		Bengali: "আপনার জন্য সঠিক প্রোগ্রাম খুঁজে পেতে আমি আবার আপনার বিবরণ জিজ্ঞাসা করছি।",
		Odia:    "ଆପଣଙ୍କ ପାଇଁ ଠିକ୍ ପ୍ରୋଗ୍ରାମ୍ ଖୋଜିବା ପାଇଁ ମୁଁ ଆପଣଙ୍କର ବିବରଣୀ ପୁନର୍ବାର ପଚାରୁଛି।",
	},
	MsgDetectLanguage: {
		English: "Please say a sentence in your preferred language. We will detect it.",
	},
	MsgLanguageConfirm: {
		English: "Detected language: %s. Should I continue in this language? Please say yes or no.",
		Telugu:  "గుర్తించిన భాష: %s. ఈ భాషలో కొనసాగించవచ్చా? దయచేసి అవును లేదా కాదు అని చెప్పండి.",
		Tamil:   "கண்டறியப்பட்ட மொழி: %s. இதே மொழியில் தொடரலாமா? தயவுசெய்து ஆம் அல்லது இல்லை என்று சொல்லுங்கள்.",
		Marathi: "ओळखलेली भाषा: %s. याच भाषेत पुढे जाऊ का? कृपया हो किंवा नाही बोला.",
		Bengali: "সনাক্ত ভাষা: %s. এই ভাষায় চলব? অনুগ্রহ করে হ্যাঁ বা না বলুন।",
		Odia:    "ଚିହ୍ନଟ ଭାଷା: %s. ଏହି ଭାଷାରେ ଅଗ୍ରଗତି କରିବି କି? ଦୟାକରି ହଁ କିମ୍ବା ନା କହନ୍ତୁ।",
	},
	MsgLanguageNotDetected: {
		English: "I couldn't detect your language. Please say the language name: English, Telugu, Tamil, Marathi, Bengali, or Odia.",
		Telugu:  "నేను మీ భాషను గుర్తించలేకపోయాను. దయచేసి భాష పేరు చెప్పండి: English, Telugu, Tamil, Marathi, Bengali, లేదా Odia.",
		Tamil:   "உங்கள் மொழியைக் கண்டறிய முடியவில்லை. தயவுசெய்து மொழி பெயரைச் சொல்லுங்கள்: English, Telugu, Tamil, Marathi, Bengali, அல்லது Odia.",
		Marathi: "मी तुमची भाषा ओळखू शकलो नाही. कृपया भाषेचे नाव सांगा: English, Telugu, Tamil, Marathi, Bengali, किंवा Odia.",
		Bengali: "আমি আপনার ভাষা শনাক্ত করতে পারিনি। অনুগ্রহ করে ভাষার নাম বলুন: English, Telugu, Tamil, Marathi, Bengali, বা Odia।",
		Odia:    "ମୁଁ ଆପଣଙ୍କର ଭାଷା ଚିହ୍ନଟ କରିପାରିଲି ନାହିଁ। ଦୟାକରି ଭାଷାର ନାମ କହନ୍ତୁ: English, Telugu, Tamil, Marathi, Bengali, କିମ୍ବା Odia।",
	},
	MsgLanguageReselect: {
		English: "Please say the language name you prefer: English, Telugu, Tamil, Marathi, Bengali, or Odia.",
		Telugu:  "దయచేసి మీరు ఇష్టపడే భాషను చెప్పండి: English, Telugu, Tamil, Marathi, Bengali, లేదా Odia.",
		Tamil:   "தயவுசெய்து நீங்கள் விரும்பும் மொழியைச் சொல்லுங்கள்: English, Telugu, Tamil, Marathi, Bengali, அல்லது Odia.",
		Marathi: "कृपया आपली पसंतीची भाषा बोला: English, Telugu, Tamil, Marathi, Bengali, किंवा Odia.",
		Bengali: "অনুগ্রহ করে আপনার পছন্দের ভাষার নাম বলুন: English, Telugu, Tamil, Marathi, Bengali, বা Odia।",
		Odia:    "ଦୟାକରି ଆପଣଙ୍କ ପସନ୍ଦର ଭାଷା କହନ୍ତୁ: English, Telugu, Tamil, Marathi, Bengali, କିମ୍ବା Odia।",
	},
	MsgLanguageRetry: {
		English: "I couldn't understand. Please say the language name again: English, Telugu, Tamil, Marathi, Bengali, or Odia.",
		Telugu:  "నేను అర్థం చేసుకోలేదు. దయచేసి భాష పేరు మళ్లీ చెప్పండి: English, Telugu, Tamil, Marathi, Bengali, లేదా Odia.",
		Tamil:   "எனக்கு புரியவில்லை. தயவுசெய்து மொழி பெயரை மீண்டும் சொல்லுங்கள்: English, Telugu, Tamil, Marathi, Bengali, அல்லது Odia.",
		Marathi: "मला समजले नाही. कृपया भाषेचे नाव पुन्हा सांगा: English, Telugu, Tamil, Marathi, Bengali, किंवा Odia.",
		Bengali: "আমি বুঝতে পারিনি। অনুগ্রহ করে ভাষার নাম আবার বলুন: English, Telugu, Tamil, Marathi, Bengali, বা Odia।",
		Odia:    "ମୁଁ ବୁଝି ପାରିଲି ନାହିଁ। ଦୟାକରି ଭାଷାର ନାମ ପୁନର୍ବାର କହନ୍ତୁ: English, Telugu, Tamil, Marathi, Bengali, କିମ୍ବା Odia।",
	},
	MsgNotUnderstood: {
		English: "I couldn't understand you. Please try again.",
		Telugu:  "నేను మిమ్మల్ని అర్థం చేసుకోలేకపోయాను. దయచేసి మళ్లీ ప్రయత్నించండి.",
		Tamil:   "என்னால் உங்களைப் புரிந்துகொள்ள முடியவில்லை. தயவுசெய்து மீண்டும் முயற்சிக்கவும்.",
		Marathi: "मला तुमचे बोलणे समजले नाही. कृपया पुन्हा प्रयत्न करा.",
		Bengali: "আমি আপনাকে বুঝতে পারিনি। অনুগ্রহ করে আবার চেষ্টা করুন।",
		Odia:    "ମୁଁ ଆପଣଙ୍କୁ ବୁଝି ପାରିଲି ନାହିଁ। ଦୟାକରି ପୁନର୍ବାର ଚେଷ୍ଟା କରନ୍ତୁ।",
	},
	MsgProcessingError: {
		English: "I'm sorry, I encountered an error. Please try again.",
		Telugu:  "క్షమించండి, ఒక లోపం సంభవించింది. దయచేసి మళ్లీ ప్రయత్నించండి.",
		Tamil:   "மன்னிக்கவும், ஒரு பிழை ஏற்பட்டது. தயவுசெய்து மீண்டும் முயற்சிக்கவும்.",
		Marathi: "माफ करा, एक त्रुटी आली. कृपया पुन्हा प्रयत्न करा.",
		Bengali: "দুঃখিত, একটি ত্রুটি ঘটেছে। অনুগ্রহ করে আবার চেষ্টা করুন।",
		Odia:    "କ୍ଷମା କରନ୍ତୁ, ଏକ ତ୍ରୁଟି ଘଟିଛି। ଦୟାକରି ପୁନର୍ବାର ଚେଷ୍ଟା କରନ୍ତୁ।",
	},
	MsgContradiction: {
		English: "I noticed your %s changed from %v to %v. I will use the new value.",
		Telugu:  "మీ %s %v నుండి %v కి మారింది. నేను కొత్త విలువను ఉపయోగిస్తాను.",
		Tamil:   "உங்கள் %s %v இலிருந்து %v ஆக மாறியுள்ளது. நான் புதிய மதிப்பை பயன்படுத்துவேன்.",
		Marathi: "तुमचे %s %v वरून %v झाले आहे. मी नवीन मूल्य वापरेन.",
		Bengali: "আপনার %s %v থেকে %v হয়েছে। আমি নতুন মানটি ব্যবহার করব।",
		Odia:    "ଆପଣଙ୍କର %s %v ରୁ %v ହୋଇଛି। ମୁଁ ନୂଆ ମୂଲ୍ୟ ବ୍ୟବହାର କରିବି।",
	},
}

// fieldNames localizes the profile field identifiers that can appear in a
// contradiction notice.
var fieldNames = map[string]map[string]string{
	"age": {
		English: "age",
		Telugu:  "వయస్సు",
		Tamil:   "வயது",
		Marathi: "वय",
		Bengali: "বয়স",
		Odia:    "ବୟସ",
	},
	"annual_income": {
		English: "annual income",
		Telugu:  "వార్షిక ఆదాయం",
		Tamil:   "வருடாந்திர வருமானம்",
		Marathi: "वार्षिक उत्पन्न",
		Bengali: "বার্ষিক আয়",
		Odia:    "ବାର୍ଷିକ ଆୟ",
	},
	"category": {
		English: "social category",
		Telugu:  "సామాజిక వర్గం",
		Tamil:   "சமூக வகுப்பு",
		Marathi: "सामाजिक श्रेणी",
		Bengali: "সামাজিক শ্রেণী",
		Odia:    "ସମାଜିକ ଶ୍ରେଣୀ",
	},
}

// Message returns the catalog text for id in lang. A language without an
// entry falls back to English; an unknown id yields the empty string.
func Message(id MessageID, lang string) string {
	entry, ok := catalog[id]
	if !ok {
		return ""
	}
	if text, ok := entry[lang]; ok {
		return text
	}
	return entry[English]
}

// Messagef formats a parameterized catalog entry. Argument order is the same
// across all languages of a given message.
func Messagef(id MessageID, lang string, args ...interface{}) string {
	return fmt.Sprintf(Message(id, lang), args...)
}

// FieldName localizes a profile field identifier for user-facing notices.
// Unknown fields are returned as-is so the notice stays informative.
func FieldName(field, lang string) string {
	entry, ok := fieldNames[field]
	if !ok {
		return field
	}
	if name, ok := entry[lang]; ok {
		return name
	}
	return entry[English]
}
