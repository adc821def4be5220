package email

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jstamb/california-breaking-news/internal/domain"
)

const siteName = "California Breaking News"

func emailShell(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #f4f4f4;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background-color: #000000; padding: 30px 40px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 800; text-transform: uppercase;">%s</h1>
      <p style="color: #888888; margin: 5px 0 0; font-size: 12px; letter-spacing: 2px; text-transform: uppercase;">Voice of the Golden State</p>
    </div>
    <div style="padding: 40px;">
%s
    </div>
    <div style="background-color: #1a1a1a; padding: 30px 40px; text-align: center;">
      <p style="color: #888888; font-size: 12px; margin: 5px 0;">&copy; %d %s. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`, html.EscapeString(title), siteName, content, time.Now().Year(), siteName)
}

func greeting(firstName *string, fallback string) string {
	if firstName != nil && *firstName != "" {
		return fmt.Sprintf("Hi %s,", html.EscapeString(*firstName))
	}
	return fallback
}

// WelcomeEmail is the verification email sent on subscribe and re-subscribe.
func WelcomeEmail(verifyURL string, firstName *string) string {
	content := fmt.Sprintf(`      <h2 style="margin: 0 0 20px; font-size: 24px; color: #111111;">%s</h2>
      <p style="color: #444444; font-size: 16px; line-height: 1.6; margin: 0 0 25px;">
        Thank you for subscribing to %s! Please verify your email address to start receiving our newsletters:
      </p>
      <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="display: inline-block; background-color: #3b82f6; color: #ffffff; padding: 14px 32px; text-decoration: none; border-radius: 6px; font-weight: 600; font-size: 14px;">Verify My Email</a>
      </p>
      <ul style="color: #666666; font-size: 14px; line-height: 1.8; padding-left: 20px;">
        <li>Weekly digest of top California news stories</li>
        <li>Breaking news alerts for major events</li>
      </ul>`,
		greeting(firstName, "Welcome!"), siteName, verifyURL)
	return emailShell("Welcome to "+siteName, content)
}

// VerifiedEmail confirms a completed verification.
func VerifiedEmail(firstName *string) string {
	content := fmt.Sprintf(`      <h2 style="margin: 0 0 20px; font-size: 24px; color: #111111;">%s</h2>
      <p style="color: #444444; font-size: 16px; line-height: 1.6; margin: 0;">
        Your subscription is confirmed. You'll receive our weekly digest of top California news stories every week.
      </p>`,
		greeting(firstName, "You're all set!"))
	return emailShell("Subscription confirmed", content)
}

// WeeklyDigestEmail renders the weekly digest for one subscriber.
func WeeklyDigestEmail(posts []domain.Post, siteURL, unsubscribeURL string, firstName *string) string {
	var articles strings.Builder
	for _, post := range posts {
		fmt.Fprintf(&articles, `      <div style="border-bottom: 1px solid #e5e5e5; padding: 25px 0;">
        <span style="display: inline-block; background-color: #3b82f6; color: #ffffff; padding: 4px 10px; font-size: 10px; font-weight: 700; text-transform: uppercase; border-radius: 3px; margin-bottom: 10px;">%s</span>
        <h3 style="margin: 0 0 10px; font-size: 20px; font-weight: 700; line-height: 1.3;">
          <a href="%s/news/%s" style="color: #111111; text-decoration: none;">%s</a>
        </h3>
        <p style="color: #666666; font-size: 12px; margin-bottom: 10px;">By %s &bull; %s</p>
        <p style="color: #444444; font-size: 14px; line-height: 1.6; margin: 0 0 15px;">%s</p>
        <a href="%s/news/%s" style="color: #3b82f6; font-size: 14px; font-weight: 600; text-decoration: none;">Read Full Story &rarr;</a>
      </div>
`,
			html.EscapeString(post.Category),
			siteURL, post.Slug, html.EscapeString(post.Title),
			html.EscapeString(post.Author), post.PublishedAt.Format("January 2, 2006"),
			html.EscapeString(post.Excerpt),
			siteURL, post.Slug)
	}

	content := fmt.Sprintf(`      <h2 style="margin: 0 0 20px; font-size: 24px; color: #111111;">%s</h2>
      <p style="color: #444444; font-size: 16px; line-height: 1.6; margin: 0 0 25px;">
        Here are this week's top California news stories:
      </p>
%s      <p style="color: #888888; font-size: 12px; margin: 30px 0 0; text-align: center;">
        <a href="%s" style="color: #3b82f6;">Unsubscribe</a> from the weekly digest.
      </p>`,
		greeting(firstName, "Hello,"), articles.String(), unsubscribeURL)
	return emailShell("Weekly Digest - "+siteName, content)
}

// ContactEmail relays a contact-form submission to the newsroom inbox.
func ContactEmail(msg domain.ContactMessage) string {
	content := fmt.Sprintf(`      <p style="margin: 0 0 4px; font-size: 12px; color: #666; text-transform: uppercase;">From</p>
      <p style="margin: 0 0 20px; font-size: 16px; color: #1a1a1a; font-weight: 600;">%s &lt;%s&gt;</p>
      <p style="margin: 0 0 4px; font-size: 12px; color: #666; text-transform: uppercase;">Subject</p>
      <p style="margin: 0 0 20px; font-size: 16px; color: #1a1a1a; font-weight: 600;">%s</p>
      <div style="background-color: #f9f9f9; padding: 20px; border-radius: 6px; border-left: 4px solid #dc2626;">
        <p style="margin: 0; font-size: 15px; color: #333; line-height: 1.6; white-space: pre-wrap;">%s</p>
      </div>`,
		html.EscapeString(msg.Name), html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject), html.EscapeString(msg.Message))
	return emailShell("Contact Form Submission", content)
}

// ContactConfirmationEmail acknowledges a contact-form submission to its
// sender.
func ContactConfirmationEmail(name string) string {
	content := fmt.Sprintf(`      <h2 style="margin: 0 0 16px; font-size: 24px; color: #1a1a1a;">Message Received!</h2>
      <p style="margin: 0 0 24px; font-size: 16px; color: #666; line-height: 1.6;">
        Hi %s, thank you for reaching out to %s. We've received your message and will get back to you as soon as possible.
      </p>
      <p style="margin: 0; font-size: 14px; color: #888;">Typical response time: 1-2 business days</p>`,
		html.EscapeString(name), siteName)
	return emailShell("We received your message", content)
}
