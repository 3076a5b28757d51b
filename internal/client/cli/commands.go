package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/models"
)

func (a *App) credentials() (string, string, error) {
	email, err := prompt(a.in, a.out, "Email")
	if err != nil {
		return "", "", err
	}
	fmt.Fprint(a.out, "Password: ")
	password, err := a.password()
	if err != nil {
		return "", "", err
	}
	if email == "" || password == "" {
		return "", "", errors.New("email and password are required")
	}
	return email, password, nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	user, err := a.api.Register(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s.\n", user.Email)
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s.\n", user.Email)
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	err := a.api.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return err
}

func (a *App) templates(ctx context.Context, _ []string) error {
	list, err := a.api.Templates(ctx)
	if err != nil {
		return err
	}
	for _, t := range list {
		fmt.Fprintf(a.out, "[%d] %s\n    Grade %s | %s | %s\n    %s\n", t.ID, t.Name, t.Grade, t.Subject, t.Topic, t.Description)
	}
	return nil
}

// create prefills grade, subject and topic from a template when an id is
// given, otherwise asks for them.
func (a *App) create(ctx context.Context, args []string) error {
	var grade, subject, topic string

	if len(args) > 0 {
		id, err := parseID(args, "create [templateID]")
		if err != nil {
			return err
		}
		tpl, err := a.findTemplate(ctx, int(id))
		if err != nil {
			return err
		}
		grade, subject, topic = tpl.Grade, tpl.Subject, tpl.Topic
		fmt.Fprintf(a.out, "Using template %q.\n", tpl.Name)
	} else {
		var err error
		if grade, err = prompt(a.in, a.out, "Grade level"); err != nil {
			return err
		}
		if subject, err = prompt(a.in, a.out, "Subject"); err != nil {
			return err
		}
		if topic, err = prompt(a.in, a.out, "Topic / lesson title"); err != nil {
			return err
		}
	}

	if grade == "" || subject == "" || topic == "" {
		return errors.New("grade, subject and topic are required")
	}

	fmt.Fprintln(a.out, "Generating lesson plan...")
	res, err := a.api.GeneratePlan(ctx, grade, subject, topic)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nPlan #%d\n\n%s\n", res.PlanID, res.Plan)
	return nil
}

func (a *App) findTemplate(ctx context.Context, id int) (*models.Template, error) {
	list, err := a.api.Templates(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("no template with id %d", id)
}

func (a *App) history(ctx context.Context, _ []string) error {
	list, err := a.api.History(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No lesson plans yet. Try 'create'.")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "#%-5d %s  Grade %s | %s | %s\n",
			p.ID, p.CreatedAt.Local().Format("2006-01-02 15:04"), p.Grade, p.Subject, p.Topic)
	}
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}
	plan, err := a.api.Plan(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Plan #%d\nGrade Level: %s\nSubject: %s\nTopic: %s\n\n%s\n",
		plan.ID, plan.Grade, plan.Subject, plan.Topic, strings.TrimRight(plan.PlanContent, "\n"))
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	id, err := parseID(args, "export <id>")
	if err != nil {
		return err
	}
	res, err := a.api.ExportPlan(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Download link (valid until %s):\n%s\n", res.ExpiresAt.Local().Format(time.Kitchen), res.URL)
	return nil
}
