package cli

import "fmt"

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the user profile." default:"1"`
	Edit ProfileEditCmd `cmd:"" help:"Edit the profile name or avatar."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	profile := tracker.Profile()
	name := profile.Name
	if name == "" {
		name = "User"
	}

	fmt.Printf("Name:             %s\n", name)
	fmt.Printf("Habits completed: %d\n", profile.TotalHabitsCompleted)
	fmt.Printf("Tasks completed:  %d\n", profile.TotalTasksCompleted)
	fmt.Printf("Best streak:      %d\n", profile.BestStreak)

	if len(profile.Achievements) == 0 {
		fmt.Println("Achievements:     none yet")
		return nil
	}

	fmt.Println("Achievements:")
	for _, a := range profile.Achievements {
		fmt.Printf("  %s %s: %s (%s)\n", a.Icon, a.Title, a.Description, a.UnlockedDate)
	}
	return nil
}

type ProfileEditCmd struct {
	Name   string `help:"New display name (unchanged if empty)."`
	Avatar string `help:"New avatar URL (unchanged if empty)."`
}

func (c *ProfileEditCmd) Run(ctx *Context) error {
	tracker, err := ctx.LoadTracker()
	if err != nil {
		return err
	}

	profile := tracker.Profile()
	if c.Name != "" {
		profile.Name = c.Name
	}
	if c.Avatar != "" {
		profile.AvatarURL = c.Avatar
	}

	if err := tracker.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
