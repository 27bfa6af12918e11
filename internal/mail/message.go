package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/reminders-backend/internal/domain"
)

// BuildReminderMessage renders the notification email for one reminder.
// Event dates are formatted in the given location.
func BuildReminderMessage(user *domain.User, rem *domain.Reminder, loc *time.Location) (subject, body string) {
	subject = "Reminder: " + rem.Title

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", user.Name)
	fmt.Fprintf(&b, "This is a reminder about %q on %s.\n",
		rem.Title, rem.EventDate.In(loc).Format("Monday, 2 January 2006 at 15:04"))
	if rem.Description != nil && *rem.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", *rem.Description)
	}

	return subject, b.String()
}
