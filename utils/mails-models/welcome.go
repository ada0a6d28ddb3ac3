package mailsmodels

import (
	"fmt"

	"healthrocket-backend/utils"
)

func Welcome(email string, name string) {
	if name == "" {
		name = "Rocketeer"
	}
	subject := "Subject: Welcome to Health Rocket \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #FF6B00; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Welcome aboard, %s!</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your Health Rocket account is ready. Start with the daily boosts, then check the pricing page to unlock the Pro Plan features.</td>
				</tr>
			</tbody>
		</table>
	</div>
`, name)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
