package intent

// Canned responses of the built-in table.
var (
	IntroductionResponses = []string{
		"I am A.R.L.O. - Artificial Reasoning and Learning Operator. I'm an AI assistant designed to help you with various tasks including answering questions, opening applications, providing system information, and more. I use Wolfram Alpha for computational queries and Wikipedia for general knowledge.",
		"Hello! I'm ARLO, your AI assistant. I can help with calculations, opening applications, system monitoring, web searches, and general questions. I integrate with Wolfram Alpha for math and Wikipedia for information.",
		"I'm A.R.L.O., an intelligent assistant created to help you. I can perform calculations, open programs, check system status, answer questions using Wolfram Alpha and Wikipedia, and even open websites for you.",
	}

	GreetingResponses = []string{
		"Hello Sir, ARLO online and ready to assist.",
		"Hi there! ARLO at your service. How may I help you today?",
		"Greetings Sir, systems are operational and ready.",
	}

	CapabilitiesResponses = []string{
		"I can help you with: ✓ Mathematical calculations ✓ Opening applications (YouTube, Google, Gmail, Notepad, Calculator) ✓ System information and battery status ✓ Taking screenshots ✓ Answering general knowledge questions ✓ Telling jokes ✓ Time and date queries ✓ Opening any .com website. Just ask me anything!",
	}

	JokeResponses = []string{
		"Why don't scientists trust atoms? Because they make up everything!",
		"I told my computer I needed a break, it went to sleep mode.",
		"Why did the AI go to therapy? It had deep learning issues!",
		"What do you call a robot that takes the long way around? R2-Detour!",
		"Why was the computer cold? It left its Windows open!",
	}
)

// WebsitePatterns extract the site name of an "open <name>.com" request.
// They are shared by the open_website intent and its handler.
var WebsitePatterns = []string{
	`\bopen\s+(\w+)\.com\b`,
	`\bgo to\s+(\w+)\.com\b`,
	`\bvisit\s+(\w+)\.com\b`,
	`\blaunch\s+(\w+)\.com\b`,
	`\b(\w+)\.com\s+please\b`,
}

// Default returns the built-in intent table.
func Default() *Table {
	t, err := NewTable(
		MustNew("self_introduction", []string{
			`\bwho are you\b`,
			`\btell me about yourself\b`,
			`\bwhat are you\b`,
			`\bintroduce yourself\b`,
			`\babout you\b`,
			`\bwho is arlo\b`,
		}, WithResponses(IntroductionResponses...)),
		MustNew("greeting", []string{
			`^(hello|hi|hey|hiya)\s*(arlo)?$`,
			`^(what's up|sup)\s*(arlo)?$`,
			`^(hey|hi)\s+arlo$`,
		}, WithResponses(GreetingResponses...)),
		MustNew("capabilities", []string{
			`\bwhat can you do\b`,
			`\byour capabilities\b`,
			`\bwhat are your features\b`,
			`\bhelp me\b`,
			`\bwhat functions\b`,
		}, WithResponses(CapabilitiesResponses...)),
		MustNew("time", []string{
			`\bwhat time\b`,
			`\btime is it\b`,
			`\btell me the time\b`,
			`\bcurrent time\b`,
			`\btime now\b`,
		}, WithHandler(HandlerTime)),
		MustNew("date", []string{
			`\bwhat date\b`,
			`\btoday's date\b`,
			`\bdate is it\b`,
			`\bwhat is the date\b`,
			`\btoday is\b`,
		}, WithHandler(HandlerDate)),
		MustNew("battery", []string{
			`\bbattery\b`,
			`\bbattery status\b`,
			`\bbattery level\b`,
			`\bhow much battery\b`,
			`\bbattery percent\b`,
		}, WithHandler(HandlerBattery)),
		MustNew("system_info", []string{
			`\bsystem info\b`,
			`\bsystem information\b`,
			`\bos info\b`,
			`\bcpu usage\b`,
			`\bram usage\b`,
			`\bsystem status\b`,
			`\bpc info\b`,
			`\bcomputer info\b`,
		}, WithHandler(HandlerSystemInfo)),
		MustNew("open_youtube", []string{
			`\bopen youtube\b`,
			`\byoutube please\b`,
			`\byoutube\.com\b`,
			`\bgo to youtube\b`,
			`\blaunch youtube\b`,
		}, WithHandler(HandlerOpenYouTube)),
		MustNew("open_google", []string{
			`\bopen google\b`,
			`\bgoogle please\b`,
			`\bgo to google\b`,
			`\bopen www\.google\.com\b`,
			`\blaunch google\b`,
		}, WithHandler(HandlerOpenGoogle)),
		MustNew("open_gmail", []string{
			`\bopen gmail\b`,
			`\bopen mail\b`,
			`\bgmail please\b`,
			`\bopen google mail\b`,
			`\blaunch gmail\b`,
		}, WithHandler(HandlerOpenGmail)),
		MustNew("open_website", WebsitePatterns, WithHandler(HandlerOpenWebsite)),
		MustNew("screenshot", []string{
			`\btake screenshot\b`,
			`\bscreenshot\b`,
			`\bgrab screen\b`,
			`\bcapture screen\b`,
			`\btake a screenshot\b`,
		}, WithHandler(HandlerScreenshot)),
		MustNew("notepad", []string{
			`\bopen notepad\b`,
			`\bstart notepad\b`,
			`\blaunch notepad\b`,
		}, WithHandler(HandlerNotepad)),
		MustNew("calculator", []string{
			`\bopen calculator\b`,
			`\bstart calculator\b`,
			`\blaunch calculator\b`,
			`\bopen calc\b`,
		}, WithHandler(HandlerCalculator)),
		MustNew("joke", []string{
			`\bjoke\b`,
			`\btell me a joke\b`,
			`\bmake me laugh\b`,
			`\bsay something funny\b`,
			`\bgive me a joke\b`,
		}, WithResponses(JokeResponses...)),
	)
	if err != nil {
		panic(err)
	}
	return t
}
