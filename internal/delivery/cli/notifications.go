package cli

import "context"

func (c *CLI) gererNotifications(ctx context.Context) error {
	notifications, err := c.svc.Notifications.Consulter(ctx)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		c.info("Aucune notification.")
		return nil
	}

	unread, err := c.svc.Notifications.NombreNonLues(ctx)
	if err != nil {
		return err
	}
	c.info("%d notification(s), %d non lue(s)", len(notifications), unread)
	for _, n := range notifications {
		c.info("%s", describeNotification(n))
	}

	id, err := c.prompt.OptionalID("ID de la notification à marquer comme lue")
	if err != nil || id == 0 {
		return err
	}
	n, err := c.svc.Notifications.MarquerCommeLue(ctx, id)
	if err != nil {
		return err
	}
	c.success("Notification %d marquée comme lue.", n.ID())
	return nil
}
