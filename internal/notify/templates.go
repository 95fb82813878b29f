package notify

import "fmt"

// Plain-text bodies only; HTML template rendering is out of scope.

// ApplicantConfirmation acknowledges a new registration request.
func ApplicantConfirmation(to, fullName, propertyName string) Message {
	subject := "We received your property registration"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour registration request for %q has been received and is awaiting review.\nWe will notify you as soon as a decision is made.\n\nBest regards,\nThe Innflow Team",
		fullName, propertyName)
	return NewMessage(to, subject, body)
}

// AdminNewRequest tells a department administrator about a pending request.
func AdminNewRequest(to, adminName, propertyName, departmentName string) Message {
	subject := "New property registration awaiting review"
	body := fmt.Sprintf(
		"Dear %s,\n\nA new registration request for %q was submitted in %s and is awaiting your review.\n\nBest regards,\nThe Innflow Team",
		adminName, propertyName, departmentName)
	return NewMessage(to, subject, body)
}

// Welcome carries the generated login and dashboard links for a freshly
// provisioned operator account.
func Welcome(to, fullName, propertyName, loginURL, dashboardURL string) Message {
	subject := "Your property is approved - welcome aboard"
	body := fmt.Sprintf(
		"Dear %s,\n\nGood news: your registration for %q has been approved.\n\nSign in: %s\nManage your property: %s\n\nYour account uses the email address and password you registered with.\n\nBest regards,\nThe Innflow Team",
		fullName, propertyName, loginURL, dashboardURL)
	return NewMessage(to, subject, body)
}

// Rejection tells the applicant their request was declined, with the reason
// stored on the request.
func Rejection(to, fullName, propertyName, reason string) Message {
	subject := "Your property registration was declined"
	body := fmt.Sprintf(
		"Dear %s,\n\nUnfortunately your registration request for %q was declined.\n\nReason: %s\n\nYou are welcome to submit a new request once the issue is resolved.\n\nBest regards,\nThe Innflow Team",
		fullName, propertyName, reason)
	return NewMessage(to, subject, body)
}
