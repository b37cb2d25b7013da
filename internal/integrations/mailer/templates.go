package mailer

import (
	"fmt"
	"html"
	"strings"
)

// Шаблоны писем. Тексты на русском, верстка - простой inline-HTML,
// совместимый с большинством почтовых клиентов.

func detailsBlock(p ReservationPayload) string {
	var b strings.Builder
	b.WriteString(`<table style="border-collapse:collapse;margin:16px 0;">`)
	row := func(label, value string) {
		fmt.Fprintf(&b,
			`<tr><td style="padding:4px 16px 4px 0;color:#6b7280;">%s</td><td style="padding:4px 0;font-weight:600;">%s</td></tr>`,
			label, html.EscapeString(value))
	}
	row("Дата", p.Date)
	row("Время", p.Time)
	row("Гостей", fmt.Sprintf("%d", p.Guests))
	row("Имя", p.Name)
	if p.Phone != nil && *p.Phone != "" {
		row("Телефон", *p.Phone)
	}
	if p.SpecialRequests != nil && *p.SpecialRequests != "" {
		row("Пожелания", *p.SpecialRequests)
	}
	b.WriteString(`</table>`)
	return b.String()
}

func wrap(title, body string) string {
	return fmt.Sprintf(
		`<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto;padding:24px;">`+
			`<h2 style="color:#111827;">%s</h2>%s`+
			`<p style="color:#9ca3af;font-size:12px;margin-top:32px;">Это автоматическое письмо, отвечать на него не нужно.</p>`+
			`</div>`,
		title, body)
}

func receivedEmail(p ReservationPayload) email {
	body := fmt.Sprintf(
		`<p>Здравствуйте, %s!</p>`+
			`<p>Мы получили вашу заявку на бронирование столика. Как только администратор её подтвердит, вы получите отдельное письмо.</p>%s`,
		html.EscapeString(p.Name), detailsBlock(p))

	return email{
		subject: "Заявка на бронирование получена",
		html:    wrap("Заявка получена", body),
	}
}

func confirmedEmail(p ReservationPayload) email {
	body := fmt.Sprintf(
		`<p>Здравствуйте, %s!</p>`+
			`<p>Ваше бронирование подтверждено. Ждём вас!</p>%s`,
		html.EscapeString(p.Name), detailsBlock(p))

	return email{
		subject: "Бронирование подтверждено",
		html:    wrap("Бронирование подтверждено", body),
	}
}

func declinedEmail(p ReservationPayload) email {
	body := fmt.Sprintf(
		`<p>Здравствуйте, %s!</p>`+
			`<p>К сожалению, мы не можем подтвердить ваше бронирование на выбранное время. Попробуйте выбрать другое время или свяжитесь с нами напрямую.</p>%s`,
		html.EscapeString(p.Name), detailsBlock(p))

	return email{
		subject: "Бронирование отклонено",
		html:    wrap("Бронирование отклонено", body),
	}
}

func newReservationNotification(p ReservationPayload) email {
	body := fmt.Sprintf(
		`<p>Поступила новая заявка на бронирование от %s (%s).</p>%s`+
			`<p>Подтвердите или отклоните заявку в панели администратора.</p>`,
		html.EscapeString(p.Name), html.EscapeString(p.Email), detailsBlock(p))

	return email{
		subject: fmt.Sprintf("Новая заявка: %s, %s %s", p.Name, p.Date, p.Time),
		html:    wrap("Новая заявка на бронирование", body),
	}
}
