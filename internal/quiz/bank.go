package quiz

import "github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"

// seedBank returns the static question bank. Content is immutable; each
// session shuffles its own working copy. True/false questions keep the
// fixed option convention: index 0 is "True", index 1 is "False".
func seedBank() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Prompt:       "What is phishing?",
			Options:      []string{"A type of malware", "A technique to trick users into revealing info", "A strong password", "A network security protocol"},
			CorrectIndex: 1,
			Explanation:  "Phishing is a fraudulent attempt to obtain sensitive information by disguising as a trustworthy entity through deceptive communications.",
		},
		{
			Prompt:       "Which of the following is an example of a strong password?",
			Options:      []string{"password123", "12345678", "P@ssw0rd!", "MyName1"},
			CorrectIndex: 2,
			Explanation:  "A strong password includes a mix of uppercase, lowercase, numbers, and symbols, and is not easily guessable. 'P@ssw0rd!' fits these criteria.",
		},
		{
			Prompt:       "What does MFA stand for in cybersecurity?",
			Options:      []string{"Malicious File Analyzer", "Multi-Factor Authentication", "Managed Firewall Access", "Mobile Fraud Alert"},
			CorrectIndex: 1,
			Explanation:  "MFA, or Multi-Factor Authentication, requires more than one method of verification to grant access, significantly increasing security.",
		},
		{
			Prompt:       "What is the primary purpose of antivirus software?",
			Options:      []string{"To speed up your computer", "To protect against malicious software", "To manage network connections", "To encrypt data"},
			CorrectIndex: 1,
			Explanation:  "Antivirus software is primarily designed to detect, prevent, and remove malicious software like viruses, worms, and Trojans.",
		},
		{
			Prompt:       "Which common threat involves attackers trying to guess your password repeatedly?",
			Options:      []string{"Phishing", "Malware", "Brute-force attack", "DDoS attack"},
			CorrectIndex: 2,
			Explanation:  "A brute-force attack is a trial-and-error method used to guess login information by systematically trying many combinations until the correct one is found.",
		},
		{
			Prompt:       "What is encryption?",
			Options:      []string{"A method to speed up internet", "Converting data to a secret code", "Blocking unwanted emails", "Scanning for viruses"},
			CorrectIndex: 1,
			Explanation:  "Encryption is the process of transforming information into a secret code (ciphertext) to protect it from unauthorized access.",
		},
		{
			Prompt:       "What is a firewall used for?",
			Options:      []string{"To block pop-up ads", "To manage internet speed", "To monitor and control network traffic", "To backup data"},
			CorrectIndex: 2,
			Explanation:  "A firewall is a network security system that monitors and controls incoming and outgoing network traffic based on predetermined security rules.",
		},
		{
			Prompt:       "It is safe to click on any link in an email, as long as it looks legitimate.",
			Options:      []string{"True", "False"},
			CorrectIndex: 1,
			Explanation:  "It's crucial to be cautious with email links. Phishing emails often look legitimate but contain malicious links. Always verify the sender and hover over links to see their true destination before clicking.",
			IsTrueFalse:  true,
		},
		{
			Prompt:       "Using the same strong password for all your online accounts is a good security practice.",
			Options:      []string{"True", "False"},
			CorrectIndex: 1,
			Explanation:  "Reusing passwords, even strong ones, is a major security risk. If one account is compromised, all other accounts using that same password become vulnerable. Use unique, strong passwords for each service, ideally with a password manager.",
			IsTrueFalse:  true,
		},
		{
			Prompt:       "Public Wi-Fi networks are always secure for sensitive activities like online banking.",
			Options:      []string{"True", "False"},
			CorrectIndex: 1,
			Explanation:  "Public Wi-Fi networks are generally unencrypted and insecure, making your data vulnerable to interception by malicious actors. Avoid sensitive activities like banking or online shopping on public Wi-Fi. Use a VPN for added security if you must.",
			IsTrueFalse:  true,
		},
		{
			Prompt:       "Updating your software and operating system regularly helps protect against security vulnerabilities.",
			Options:      []string{"True", "False"},
			CorrectIndex: 0,
			Explanation:  "Software updates often include patches for newly discovered security vulnerabilities. Keeping your systems updated is a fundamental cybersecurity practice to stay protected against known threats.",
			IsTrueFalse:  true,
		},
		{
			Prompt:       "Ransomware encrypts your files and demands payment to decrypt them.",
			Options:      []string{"True", "False"},
			CorrectIndex: 0,
			Explanation:  "Ransomware is a type of malicious software that encrypts a victim's files and demands a ransom payment (usually in cryptocurrency) for the decryption key.",
			IsTrueFalse:  true,
		},
	}
}
